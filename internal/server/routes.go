package server

import (
	"log"
	"net/http"

	"github.com/jvs-dev/memory-game-guadalupe/internal/catalog"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface: the card-management API, the WebSocket
// endpoint and the static game frontend.
func NewRouter(store catalog.Store, backend string, staticDir string, hub *Hub) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"catalog_backend": backend,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/cards", func(c *gin.Context) { listCards(store, c) })
		api.POST("/cards", func(c *gin.Context) { createCard(store, c) })
		api.DELETE("/cards/:identity", func(c *gin.Context) { deleteCard(store, c) })
	}

	r.GET("/ws", func(c *gin.Context) {
		ServeWs(hub, c.Writer, c.Request)
	})

	if staticDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}

	return r
}

func listCards(store catalog.Store, c *gin.Context) {
	cards, err := store.List(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list cards: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cards"})
		return
	}
	if cards == nil {
		cards = []catalog.Card{}
	}
	c.JSON(http.StatusOK, cards)
}

type createCardRequest struct {
	Identity string `json:"identity"`
	Image    string `json:"image"`
	Points   int    `json:"points"`
	Author   string `json:"author"`
}

// createCard stores a card, replacing an existing one with the same identity
// (last write wins).
func createCard(store catalog.Store, c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card payload"})
		return
	}
	if req.Identity == "" || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity and image are required"})
		return
	}
	if !catalog.ValidPoints(req.Points) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points must be 10 or 20"})
		return
	}

	card := catalog.Card{
		Identity: req.Identity,
		Image:    req.Image,
		Points:   req.Points,
		Author:   req.Author,
	}
	if err := store.Put(c.Request.Context(), card); err != nil {
		log.Printf("Failed to save card %q: %v", req.Identity, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save card"})
		return
	}
	c.JSON(http.StatusCreated, card)
}

// deleteCard removes a card by identity. The delete is idempotent: a missing
// identity still answers 204.
func deleteCard(store catalog.Store, c *gin.Context) {
	identity := c.Param("identity")
	if err := store.Delete(c.Request.Context(), identity); err != nil {
		log.Printf("Failed to delete card %q: %v", identity, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete card"})
		return
	}
	c.Status(http.StatusNoContent)
}
