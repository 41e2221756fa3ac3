package engine

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/avray/starforge/internal/galaxy"
)

// SyncInterval bounds how often a session pushes its snapshot to the state
// store. Persistence is a fire-and-forget side effect, never part of the
// tick's critical path.
const SyncInterval = 5 * time.Second

// Store is the external state store boundary: last-write-wins snapshot
// put, keyed by player id. The snapshot is the player's full JSON
// aggregate.
type Store interface {
	SavePlayerSnapshot(playerID string, snapshot []byte) error
}

// TargetIntel describes the defender side of a remote coordinate, supplied
// by the galaxy collaborator. Cross-player reads go through this boundary
// so player simulations stay independent.
type TargetIntel struct {
	Fleet     map[string]int
	Defense   map[string]int
	Resources Payload // lootable balances
	SpyLevel  int     // defender espionage strength
	Buildings map[string]int
	Research  map[string]int
}

// TargetResolver supplies defender intel and slot occupancy for remote
// coordinates.
type TargetResolver interface {
	Intel(c galaxy.Coord) TargetIntel
	Occupied(c galaxy.Coord) bool
}

// Session drives one player's simulation. All methods must be called from
// a single goroutine; distinct sessions are fully independent.
type Session struct {
	Player   *Player
	Registry galaxy.Registry
	Targets  TargetResolver
	Store    Store

	rng      *rand.Rand
	lastTick int64 // unix ms of the previous step, 0 before the first
	sync     rate.Sometimes
}

// NewSession creates a session around a loaded player. The seed drives
// combat targeting, expedition and spy rolls; fix it to replay a session.
func NewSession(p *Player, registry galaxy.Registry, targets TargetResolver, store Store, seed int64) *Session {
	p.ReindexPlanets()
	return &Session{
		Player:   p,
		Registry: registry,
		Targets:  targets,
		Store:    store,
		rng:      rand.New(rand.NewSource(seed)),
		sync:     rate.Sometimes{Interval: SyncInterval},
	}
}

// Step advances the player's simulation to now (unix milliseconds):
// economy, then construction queues, then mission arrivals, then a
// throttled persistence sync. A vacationing player is frozen; state is
// timestamp-based, so an arbitrarily long gap resumes cleanly.
func (s *Session) Step(now int64) {
	if s.Player.Vacation {
		s.lastTick = now
		return
	}
	if s.lastTick == 0 {
		s.lastTick = now
	}
	dt := float64(now-s.lastTick) / 1000
	if dt < 0 {
		dt = 0
	}
	s.lastTick = now

	for _, planet := range s.Player.Planets {
		TickEconomy(s.Player, planet, dt)
		AdvanceQueue(s.Player, planet, now)
	}
	s.advanceMissions(now)

	if s.Store != nil {
		s.sync.Do(func() { s.persist() })
	}
}

// persist serializes in the tick goroutine and hands the write off, so the
// store's I/O never blocks the next tick.
func (s *Session) persist() {
	snapshot, err := json.Marshal(s.Player)
	if err != nil {
		slog.Error("snapshot marshal failed", "player", s.Player.ID, "error", err)
		return
	}
	id := s.Player.ID
	store := s.Store
	go func() {
		if err := store.SavePlayerSnapshot(id, snapshot); err != nil {
			slog.Error("snapshot save failed", "player", id, "error", err)
		}
	}()
}

// Flush forces a synchronous snapshot save, used at shutdown.
func (s *Session) Flush() error {
	if s.Store == nil {
		return nil
	}
	snapshot, err := json.Marshal(s.Player)
	if err != nil {
		return err
	}
	return s.Store.SavePlayerSnapshot(s.Player.ID, snapshot)
}

// LoadPlayer reconstructs a player from a stored JSON aggregate.
func LoadPlayer(snapshot []byte) (*Player, error) {
	var p Player
	if err := json.Unmarshal(snapshot, &p); err != nil {
		return nil, err
	}
	p.ReindexPlanets()
	return &p, nil
}
