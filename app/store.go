package app

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/notnil/chess"

	"github.com/pramod-motupalli/Chess.IO/app/models"
	"github.com/pramod-motupalli/Chess.IO/engine"
)

// GameSession is one live game: the move history, the engine playing one
// side, and the running move log. Callers hold the session lock across a
// read-modify-write of the game.
type GameSession struct {
	mu sync.Mutex

	ID         string
	Game       *chess.Game
	Engine     *engine.Engine
	Difficulty engine.Difficulty
	Persona    string
	MoveLog    []models.MoveRecord
	CreatedAt  time.Time
}

func (s *GameSession) Lock()   { s.mu.Lock() }
func (s *GameSession) Unlock() { s.mu.Unlock() }

// Record appends a move to the log. Caller holds the session lock and
// encodes SAN against the position the move was played from.
func (s *GameSession) Record(m *chess.Move, san string, color chess.Color, comment, eval string) {
	s.MoveLog = append(s.MoveLog, models.MoveRecord{
		Ply:     len(s.MoveLog) + 1,
		Color:   colorName(color),
		UCI:     chess.UCINotation{}.Encode(nil, m),
		SAN:     san,
		Comment: comment,
		Eval:    eval,
	})
}

// GameStore keeps sessions in memory, keyed by id. Games vanish on restart;
// persistence is a frontend concern (it can replay the move log).
type GameStore struct {
	mu       sync.RWMutex
	sessions map[string]*GameSession
}

func NewGameStore() *GameStore {
	return &GameStore{sessions: make(map[string]*GameSession)}
}

func (gs *GameStore) Create(engineColor chess.Color, difficulty engine.Difficulty, persona string) *GameSession {
	eng := engine.New(engineColor, difficulty)
	eng.SetPersona(persona)

	s := &GameSession{
		ID:         uuid.NewString(),
		Game:       chess.NewGame(),
		Engine:     eng,
		Difficulty: difficulty,
		Persona:    strings.ToLower(persona),
		CreatedAt:  time.Now(),
	}

	gs.mu.Lock()
	gs.sessions[s.ID] = s
	gs.mu.Unlock()
	return s
}

func (gs *GameStore) Get(id string) (*GameSession, bool) {
	gs.mu.RLock()
	s, ok := gs.sessions[id]
	gs.mu.RUnlock()
	return s, ok
}

func (gs *GameStore) Delete(id string) {
	gs.mu.Lock()
	delete(gs.sessions, id)
	gs.mu.Unlock()
}

func (gs *GameStore) Len() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.sessions)
}
