package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// player holds the per-participant state owned by a session. It is only
// mutated while the owning session's lock is held.
type player struct {
	email       string
	hand        []Card
	aceAsEleven map[uuid.UUID]bool
	points      int
	busted      bool
	standing    bool
}

// terminal reports whether the player can take no further draws.
func (p *player) terminal() bool {
	return p.busted || p.standing
}

func (p *player) recompute() {
	p.points, p.busted = Score(p.hand, p.aceAsEleven)
}

// Session is one in-progress or finished blackjack game. Every mutation and
// read goes through the session's own lock, so operations on one session
// serialize while unrelated sessions progress concurrently.
type Session struct {
	ID        uuid.UUID
	CreatorID uuid.UUID
	CreatedAt time.Time

	mu       sync.RWMutex
	order    []string // participant emails in fixed turn order, append-only
	players  map[string]*player
	deck     *Deck
	turn     int // index into order of the participant whose turn it is
	finished bool
}

// DrawResult reports the outcome of a successful draw.
type DrawResult struct {
	Card           Card   `json:"card"`
	CurrentPoints  int    `json:"current_points"`
	Busted         bool   `json:"busted"`
	CardsRemaining int    `json:"cards_remaining"`
	CardsHistory   []Card `json:"cards_history"`
}

// AceResult reports a player's score after changing an Ace's value.
type AceResult struct {
	Points int  `json:"points"`
	Busted bool `json:"busted"`
}

// StandResult reports a player's final standing state.
type StandResult struct {
	Points       int  `json:"points"`
	Busted       bool `json:"busted"`
	GameFinished bool `json:"game_finished"`
}

// PlayerView is a read-only snapshot of one participant's state.
type PlayerView struct {
	Points       int    `json:"points"`
	CardsHistory []Card `json:"cards_history"`
	Busted       bool   `json:"busted"`
}

// StateView is a read-only snapshot of a whole session.
type StateView struct {
	Players           map[string]PlayerView `json:"players"`
	CardsInDeck       int                   `json:"cards_in_deck"`
	Finished          bool                  `json:"finished"`
	CurrentTurnPlayer string                `json:"current_turn_player,omitempty"`
}

// PlayerSummary is one participant's line in the final results.
type PlayerSummary struct {
	Points     int  `json:"points"`
	CardsCount int  `json:"cards_count"`
	Busted     bool `json:"busted"`
}

// Result is the outcome of a finished game. Winner is empty when the maximum
// non-busted score is shared, in which case every tying participant appears
// in TiedPlayers instead.
type Result struct {
	Winner       string                   `json:"winner,omitempty"`
	TiedPlayers  []string                 `json:"tied_players"`
	HighestScore int                      `json:"highest_score"`
	AllPlayers   map[string]PlayerSummary `json:"all_players"`
}

func newSession(creatorID uuid.UUID, emails []string) *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatorID: creatorID,
		CreatedAt: time.Now().UTC(),
		order:     make([]string, 0, len(emails)),
		players:   make(map[string]*player, len(emails)),
		deck:      NewShuffledDeck(),
	}
	for _, email := range emails {
		s.order = append(s.order, email)
		s.players[email] = &player{
			email:       email,
			aceAsEleven: make(map[uuid.UUID]bool),
		}
	}
	return s
}

// Draw deals the top card to actor. The turn stays with the drawing player
// unless the draw busts them, in which case the turn advances. An exhausted
// deck force-finishes the session and still reports ErrEmptyDeck.
func (s *Session) Draw(actor string) (DrawResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return DrawResult{}, ErrGameFinished
	}
	p, ok := s.players[actor]
	if !ok {
		return DrawResult{}, ErrPlayerNotInGame
	}
	if s.order[s.turn] != actor {
		return DrawResult{}, ErrNotYourTurn
	}

	card, err := s.deck.Draw()
	if err != nil {
		s.finished = true
		return DrawResult{}, err
	}

	p.hand = append(p.hand, card)
	if card.IsAce() {
		p.aceAsEleven[card.ID] = true
	}
	p.recompute()
	if p.busted {
		s.advanceLocked()
	}

	return DrawResult{
		Card:           card,
		CurrentPoints:  p.points,
		Busted:         p.busted,
		CardsRemaining: s.deck.Remaining(),
		CardsHistory:   append([]Card(nil), p.hand...),
	}, nil
}

// SetAceValue flips one of actor's dealt Aces between 1 and 11. It is
// permitted at any time before the session finishes, regardless of whose
// turn it is; only the hand owner can reach their own Aces.
func (s *Session) SetAceValue(actor string, cardID uuid.UUID, asEleven bool) (AceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return AceResult{}, ErrGameFinished
	}
	p, ok := s.players[actor]
	if !ok {
		return AceResult{}, ErrPlayerNotInGame
	}

	found := false
	for _, card := range p.hand {
		if card.ID == cardID && card.IsAce() {
			found = true
			break
		}
	}
	if !found {
		return AceResult{}, ErrCardNotFound
	}

	p.aceAsEleven[cardID] = asEleven
	p.recompute()
	return AceResult{Points: p.points, Busted: p.busted}, nil
}

// Stand marks actor as standing and advances the turn to the next
// non-terminal participant. When none remains the session finishes.
func (s *Session) Stand(actor string) (StandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return StandResult{}, ErrGameFinished
	}
	p, ok := s.players[actor]
	if !ok {
		return StandResult{}, ErrPlayerNotInGame
	}
	if s.order[s.turn] != actor {
		return StandResult{}, ErrNotYourTurn
	}

	p.standing = true
	s.advanceLocked()

	return StandResult{Points: p.points, Busted: p.busted, GameFinished: s.finished}, nil
}

// Finish transitions the session to its terminal state. Participants who
// never acted are scored as-is: zero cards is score 0, not busted.
func (s *Session) Finish() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return Result{}, ErrGameFinished
	}
	s.finished = true
	return s.resultLocked(), nil
}

// Results returns the final outcome of a finished session.
func (s *Session) Results() (Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.finished {
		return Result{}, ErrGameNotFinished
	}
	return s.resultLocked(), nil
}

// State returns a consistent snapshot of the session.
func (s *Session) State() StateView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := StateView{
		Players:     make(map[string]PlayerView, len(s.players)),
		CardsInDeck: s.deck.Remaining(),
		Finished:    s.finished,
	}
	for email, p := range s.players {
		view.Players[email] = PlayerView{
			Points:       p.points,
			CardsHistory: append([]Card(nil), p.hand...),
			Busted:       p.busted,
		}
	}
	if !s.finished {
		view.CurrentTurnPlayer = s.order[s.turn]
	}
	return view
}

// AddPlayer appends a new participant to the end of the turn order. The
// current-turn pointer is index-based, so an append never disturbs whose
// turn it is.
func (s *Session) AddPlayer(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return ErrGameFinished
	}
	if _, exists := s.players[email]; exists {
		return ErrDuplicatePlayer
	}
	s.order = append(s.order, email)
	s.players[email] = &player{
		email:       email,
		aceAsEleven: make(map[uuid.UUID]bool),
	}
	return nil
}

// HasPlayer reports whether email is a participant.
func (s *Session) HasPlayer(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.players[email]
	return ok
}

// IsCreator reports whether userID created this session.
func (s *Session) IsCreator(userID uuid.UUID) bool {
	return s.CreatorID == userID
}

// advanceLocked moves the turn forward to the next non-terminal participant.
// The order only grows at the tail, so a linear forward scan suffices; when
// no non-terminal participant remains the session finishes.
func (s *Session) advanceLocked() {
	for i := s.turn + 1; i < len(s.order); i++ {
		if !s.players[s.order[i]].terminal() {
			s.turn = i
			return
		}
	}
	// Everyone at or past the current turn is terminal; participants before
	// the current index became terminal when the turn moved past them.
	s.finished = true
}

func (s *Session) resultLocked() Result {
	result := Result{
		TiedPlayers: []string{},
		AllPlayers:  make(map[string]PlayerSummary, len(s.players)),
	}

	highest := -1
	for _, email := range s.order {
		p := s.players[email]
		result.AllPlayers[email] = PlayerSummary{
			Points:     p.points,
			CardsCount: len(p.hand),
			Busted:     p.busted,
		}
		if p.busted {
			continue
		}
		if p.points > highest {
			highest = p.points
		}
	}
	if highest < 0 {
		// Every participant busted: no winner, no ties.
		return result
	}

	result.HighestScore = highest
	contenders := make([]string, 0, len(s.order))
	for _, email := range s.order {
		p := s.players[email]
		if !p.busted && p.points == highest {
			contenders = append(contenders, email)
		}
	}
	if len(contenders) == 1 {
		result.Winner = contenders[0]
	} else {
		result.TiedPlayers = contenders
	}
	return result
}
