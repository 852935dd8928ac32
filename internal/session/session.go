// Package session makes games safe to share between goroutines.
package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/engine"
)

// SafeGame serialises every operation on one game behind a mutex.
type SafeGame struct {
	mu               sync.Mutex
	game             *chess.Game
	arbiter          *engine.Arbiter
	recomputeAttacks bool
}

// NewSafeGame wraps g. When recomputeAttacks is set both attack maps are
// refreshed after every applied move, under the same lock.
func NewSafeGame(g *chess.Game, arbiter *engine.Arbiter, recomputeAttacks bool) *SafeGame {
	if arbiter == nil {
		arbiter = engine.NewArbiter(nil)
	}
	sg := &SafeGame{
		game:             g,
		arbiter:          arbiter,
		recomputeAttacks: recomputeAttacks,
	}
	if recomputeAttacks {
		arbiter.RecomputeAllAttackMaps(g)
	}
	return sg
}

// ID returns the game's identity.
func (s *SafeGame) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ID
}

// AttemptMove validates and applies a move atomically.
func (s *SafeGame) AttemptMove(from, to chess.Coord) (*chess.MoveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.arbiter.AttemptMove(s.game, from, to)
	if err != nil {
		return nil, err
	}
	if s.recomputeAttacks {
		s.arbiter.RecomputeAllAttackMaps(s.game)
	}
	return record, nil
}

// Snapshot returns a deep copy of the game.
func (s *SafeGame) Snapshot() *chess.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// FEN returns the current position as a FEN string.
func (s *SafeGame) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.PositionFEN(s.game)
}

// View runs fn with the game under the lock. fn must not retain g.
func (s *SafeGame) View(fn func(g *chess.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Manager is a registry of live games keyed by id.
type Manager struct {
	mu      sync.RWMutex
	games   map[uuid.UUID]*SafeGame
	arbiter *engine.Arbiter
	logger  *zap.Logger

	recomputeAttacks bool
}

// NewManager creates an empty registry. All games share one arbiter.
func NewManager(logger *zap.Logger, recomputeAttacks bool) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		games:            make(map[uuid.UUID]*SafeGame),
		arbiter:          engine.NewArbiter(logger),
		logger:           logger.Named("session"),
		recomputeAttacks: recomputeAttacks,
	}
}

// NewGame creates a game in the standard layout and registers it.
func (m *Manager) NewGame(white, black engine.PlayerSpec) (*SafeGame, error) {
	g, err := engine.NewGame(white, black)
	if err != nil {
		return nil, err
	}
	return m.Add(g), nil
}

// Add registers an existing game.
func (m *Manager) Add(g *chess.Game) *SafeGame {
	sg := NewSafeGame(g, m.arbiter, m.recomputeAttacks)

	m.mu.Lock()
	m.games[g.ID] = sg
	m.mu.Unlock()

	m.logger.Debug("game registered",
		zap.Stringer("game", g.ID),
		zap.String("white", g.Players[g.PlayerByColour(chess.White)].Name),
		zap.String("black", g.Players[g.PlayerByColour(chess.Black)].Name))
	return sg
}

// Get returns the game with the given id.
func (m *Manager) Get(id uuid.UUID) (*SafeGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sg, ok := m.games[id]
	if !ok {
		return nil, errGameNotFound(id)
	}
	return sg, nil
}

// Move applies a move to the game with the given id.
func (m *Manager) Move(id uuid.UUID, from, to chess.Coord) (*chess.MoveRecord, error) {
	sg, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return sg.AttemptMove(from, to)
}

// Remove drops a game from the registry.
func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errGameNotFound(id)
	}
	delete(m.games, id)
	m.logger.Debug("game removed", zap.Stringer("game", id))
	return nil
}

// Len returns the number of registered games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
