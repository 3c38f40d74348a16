package shared

// VariantKind distinguishes the two faces minted from one catalog card.
type VariantKind string

const (
	VariantImage VariantKind = "image"
	VariantText  VariantKind = "text"
)

// CardDefinition is one card concept from the managed catalog.
// Definitions are immutable once fetched; the deck builder mints two
// playable pieces (an image face and a text face) from each selected one.
type CardDefinition struct {
	Identity string `json:"identity"` // unique human-readable label (e.g. "Lion")
	Image    string `json:"image"`    // URL or data URI
	Points   int    `json:"points"`   // 10 or 20
	Author   string `json:"author"`
}

// PlayablePiece is a single flippable unit on the board. Two pieces share an
// Identity; turning both face-up resolves them as a matched pair.
type PlayablePiece struct {
	InstanceID  int         `json:"instance_id"` // stable for the session, equals deck position
	Identity    string      `json:"identity"`
	Variant     VariantKind `json:"variant"`
	Image       string      `json:"image"`
	Points      int         `json:"points"`
	FaceUp      bool        `json:"face_up"`
	Resolved    bool        `json:"resolved"`    // permanently matched, out of play
	Highlighted bool        `json:"highlighted"` // transient "just matched" state
}
