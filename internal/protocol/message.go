package protocol

import (
	"encoding/json"

	"github.com/jvs-dev/memory-game-guadalupe/internal/game"
	"github.com/jvs-dev/memory-game-guadalupe/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // e.g. "start_game", "flip"
	Payload json.RawMessage `json:"payload,omitempty"` // raw JSON payload, allows flexible structures
}

// Error codes surfaced to the client.
const (
	CodeInsufficientCatalog = "insufficient_catalog"
	CodeCatalogUnavailable  = "catalog_unavailable"
	CodeNotInGame           = "not_in_game"
	CodeUnknownMessage      = "unknown_message"
)

// --- Client -> Server Payload Structs ---

type StartGamePayload struct {
	Mode shared.Mode `json:"mode"`
}

type FlipPayload struct {
	InstanceID int `json:"instance_id"`
}

// --- Server -> Client Payload Structs ---

// PieceView is the client-facing form of a piece. Identity, variant, image
// and points are withheld while the piece is face-down so the board cannot
// be read out of the payload.
type PieceView struct {
	InstanceID  int                `json:"instance_id"`
	FaceUp      bool               `json:"face_up"`
	Resolved    bool               `json:"resolved"`
	Highlighted bool               `json:"highlighted"`
	Identity    string             `json:"identity,omitempty"`
	Variant     shared.VariantKind `json:"variant,omitempty"`
	Image       string             `json:"image,omitempty"`
	Points      int                `json:"points,omitempty"`
}

type GameStatePayload struct {
	Mode         shared.Mode `json:"mode"`
	Phase        game.Phase  `json:"phase"`
	ActivePlayer int         `json:"active_player"`
	ScorePlayer1 int         `json:"score_player1"`
	ScorePlayer2 int         `json:"score_player2"`
	MatchedPairs int         `json:"matched_pairs"`
	Moves        int         `json:"moves"`
	Complete     bool        `json:"complete"`
	Pieces       []PieceView `json:"pieces"`
}

type GameOverPayload struct {
	ScorePlayer1 int `json:"score_player1"`
	ScorePlayer2 int `json:"score_player2"`
	Moves        int `json:"moves"`
	Winner       int `json:"winner"` // 0 in solo mode and on a two-player tie
}

type ErrorPayload struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// NewGameState converts a session snapshot into the broadcast payload.
func NewGameState(snap game.Snapshot) GameStatePayload {
	pieces := make([]PieceView, len(snap.Pieces))
	for i, p := range snap.Pieces {
		pv := PieceView{
			InstanceID:  p.InstanceID,
			FaceUp:      p.FaceUp,
			Resolved:    p.Resolved,
			Highlighted: p.Highlighted,
		}
		if p.FaceUp || p.Resolved {
			pv.Identity = p.Identity
			pv.Variant = p.Variant
			pv.Image = p.Image
			pv.Points = p.Points
		}
		pieces[i] = pv
	}

	return GameStatePayload{
		Mode:         snap.Mode,
		Phase:        snap.Phase,
		ActivePlayer: snap.ActivePlayer,
		ScorePlayer1: snap.Scores.Player1,
		ScorePlayer2: snap.Scores.Player2,
		MatchedPairs: snap.MatchedPairs,
		Moves:        snap.Moves,
		Complete:     snap.Complete,
		Pieces:       pieces,
	}
}

// NewGameOver builds the end-of-game payload from a completed snapshot.
func NewGameOver(snap game.Snapshot) GameOverPayload {
	payload := GameOverPayload{
		ScorePlayer1: snap.Scores.Player1,
		ScorePlayer2: snap.Scores.Player2,
		Moves:        snap.Moves,
	}
	if snap.Mode == shared.ModeTwoPlayer {
		switch {
		case snap.Scores.Player1 > snap.Scores.Player2:
			payload.Winner = 1
		case snap.Scores.Player2 > snap.Scores.Player1:
			payload.Winner = 2
		}
	}
	return payload
}

// NewMessage marshals a typed payload into the wire envelope.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}
