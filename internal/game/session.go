package game

import (
	"log"
	"sync"
	"time"

	"github.com/jvs-dev/memory-game-guadalupe/internal/shared"

	"github.com/google/uuid"
)

// Phase represents where a session is in its flip/resolve cycle.
type Phase string

const (
	Idle               Phase = "idle"                 // no unresolved piece face-up
	AwaitingSecondFlip Phase = "awaiting_second_flip" // exactly one face-up, unresolved piece
	Resolving          Phase = "resolving"            // two face-up pieces being evaluated
	Complete           Phase = "complete"             // all pairs matched
)

// Resolution delays. A matched pair lights up after a short grace period and
// leaves play once the full settle time has passed; a mismatched pair turns
// back over after a beat.
const (
	HighlightDelay = 600 * time.Millisecond
	ResolveDelay   = 2 * time.Second // measured from match detection
	MismatchDelay  = time.Second
)

// TotalPairs is the number of matches that finish a session.
const TotalPairs = shared.PairsPerGame

// Snapshot is a read-only copy of session state handed to the presentation
// layer after every transition.
type Snapshot struct {
	Mode         shared.Mode
	Phase        Phase
	ActivePlayer int
	Scores       shared.Scores
	MatchedPairs int
	Moves        int
	Complete     bool
	Pieces       []shared.PlayablePiece
}

// ChangeFunc receives a fresh snapshot after every observable transition,
// including the timer-driven ones.
type ChangeFunc func(Snapshot)

// Session owns the authoritative state of one play-through, from deck build
// to completion or abandonment. All mutation is serialized through mu;
// scheduled resolution callbacks re-enter through the same lock and are
// discarded when their deck epoch has passed.
type Session struct {
	ID string

	mu           sync.Mutex
	mode         shared.Mode
	phase        Phase
	catalog      []shared.CardDefinition
	pieces       []shared.PlayablePiece
	selection    []int // instance ids awaiting resolution; length 0..2
	activePlayer int
	scores       shared.Scores
	matchedPairs int
	moves        int

	epoch    int // bumped on restart and stop; stale timers check it
	timers   []Timer
	sched    Scheduler
	onChange ChangeFunc
	closed   bool
}

// NewSession builds a deck from the catalog and starts a session over it.
// The catalog is retained so Restart can rebuild a fresh deck.
func NewSession(mode shared.Mode, catalog []shared.CardDefinition, sched Scheduler, onChange ChangeFunc) (*Session, error) {
	pieces, err := shared.BuildDeck(catalog)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:           uuid.NewString(),
		mode:         mode,
		phase:        Idle,
		catalog:      catalog,
		pieces:       pieces,
		activePlayer: 1,
		sched:        sched,
		onChange:     onChange,
	}
	log.Printf("Session %s: started (%s, %d pieces)", s.ID, mode, len(pieces))
	return s, nil
}

// Flip processes the single player action. A rejected flip leaves every
// field untouched: a full selection buffer, an already face-up piece, or an
// already resolved piece is the interaction lock while a pair resolves.
func (s *Session) Flip(instanceID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.phase == Complete {
		return
	}
	if instanceID < 0 || instanceID >= len(s.pieces) {
		log.Printf("Session %s: flip for unknown piece %d ignored", s.ID, instanceID)
		return
	}
	if len(s.selection) >= 2 {
		return
	}
	piece := &s.pieces[instanceID]
	if piece.FaceUp || piece.Resolved {
		return
	}

	piece.FaceUp = true
	s.selection = append(s.selection, instanceID)

	if len(s.selection) < 2 {
		s.phase = AwaitingSecondFlip
		s.notify()
		return
	}

	s.phase = Resolving
	s.moves++
	first, second := s.selection[0], s.selection[1]
	if s.pieces[first].Identity == s.pieces[second].Identity {
		s.scheduleMatch(first, second)
	} else {
		s.scheduleMismatch(first, second)
	}
	s.notify()
}

// scheduleMatch runs the highlight-then-resolve sequence for a matched pair.
// Assumes lock is held.
func (s *Session) scheduleMatch(a, b int) {
	points := s.pieces[a].Points

	s.after(HighlightDelay, func() {
		s.pieces[a].Highlighted = true
		s.pieces[b].Highlighted = true
	})
	s.after(ResolveDelay, func() {
		s.pieces[a].Highlighted = false
		s.pieces[b].Highlighted = false
		s.pieces[a].Resolved = true
		s.pieces[b].Resolved = true
		s.scores = shared.CreditScore(s.mode, s.activePlayer, points, s.scores)
		s.activePlayer = shared.AdvanceTurn(s.mode, s.activePlayer, true)
		s.matchedPairs++
		s.selection = s.selection[:0]
		if s.matchedPairs == TotalPairs {
			s.phase = Complete
			log.Printf("Session %s: complete after %d moves (%d - %d)",
				s.ID, s.moves, s.scores.Player1, s.scores.Player2)
		} else {
			s.phase = Idle
		}
	})
}

// scheduleMismatch turns a mismatched pair back over after a delay. Assumes
// lock is held.
func (s *Session) scheduleMismatch(a, b int) {
	s.after(MismatchDelay, func() {
		s.pieces[a].FaceUp = false
		s.pieces[b].FaceUp = false
		s.selection = s.selection[:0]
		s.activePlayer = shared.AdvanceTurn(s.mode, s.activePlayer, false)
		s.phase = Idle
	})
}

// after schedules fn to run under the session lock, tagged with the current
// deck epoch. A restart or stop both stops the timer and bumps the epoch, so
// a callback that already fired before Stop still cannot touch the new deck.
func (s *Session) after(d time.Duration, fn func()) {
	epoch := s.epoch
	t := s.sched.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.epoch != epoch {
			return
		}
		fn()
		s.notify()
	})
	s.timers = append(s.timers, t)
}

// Restart rebuilds a fresh deck over the same catalog and resets all
// counters, invalidating any pending resolution callbacks first.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	pieces, err := shared.BuildDeck(s.catalog)
	if err != nil {
		return err
	}

	s.cancelTimersLocked()
	s.epoch++
	s.pieces = pieces
	s.selection = s.selection[:0]
	s.phase = Idle
	s.activePlayer = 1
	s.scores = shared.Scores{}
	s.matchedPairs = 0
	s.moves = 0
	log.Printf("Session %s: restarted", s.ID)

	s.notify()
	return nil
}

// Stop discards the session. Used on return-to-menu and on disconnect; no
// callback fires after Stop returns.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.cancelTimersLocked()
	s.epoch++
	s.closed = true
	log.Printf("Session %s: stopped", s.ID)
}

func (s *Session) cancelTimersLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = s.timers[:0]
}

// Snapshot returns a read-only copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	pieces := make([]shared.PlayablePiece, len(s.pieces))
	copy(pieces, s.pieces)
	return Snapshot{
		Mode:         s.mode,
		Phase:        s.phase,
		ActivePlayer: s.activePlayer,
		Scores:       s.scores,
		MatchedPairs: s.matchedPairs,
		Moves:        s.moves,
		Complete:     s.phase == Complete,
		Pieces:       pieces,
	}
}

// notify hands a snapshot to the presentation callback. Assumes lock is
// held; the callback must not call back into the session.
func (s *Session) notify() {
	if s.onChange == nil {
		return
	}
	s.onChange(s.snapshotLocked())
}
