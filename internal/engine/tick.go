package engine

import (
	"log/slog"
	"sync"
	"time"
)

// Engine drives registered player sessions on a fixed interval. Each
// session advances independently; within a session the tick runs economy,
// queue and missions to completion before the next tick may start.
type Engine struct {
	Interval time.Duration // base tick interval (default 1 second)
	Speed    float64       // multiplier: 1.0 = real-time, 0 = paused

	mu       sync.Mutex
	sessions map[string]*Session
	running  bool
	stop     chan struct{}
}

// NewEngine creates a tick engine with default pacing.
func NewEngine() *Engine {
	return &Engine{
		Interval: time.Second,
		Speed:    1.0,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
}

// Register adds a player session to the tick schedule.
func (e *Engine) Register(s *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[s.Player.ID] = s
	slog.Info("session registered", "player", s.Player.ID, "planets", len(s.Player.Planets))
}

// Unregister removes a player from the tick schedule, freezing their state
// at its current timestamps.
func (e *Engine) Unregister(playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, playerID)
}

// Run starts the tick loop. Blocks until Stop is called.
func (e *Engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()
	slog.Info("tick engine started", "interval", e.Interval, "speed", e.Speed)

	for {
		select {
		case <-e.stop:
			slog.Info("tick engine stopped")
			return
		default:
		}

		if e.Speed <= 0 {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		e.StepAll(start.UnixMilli())

		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}
}

// Stop halts the tick loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.running = false
		close(e.stop)
	}
}

// StepAll advances every registered session to now (unix milliseconds).
// Exposed so tests and batch catch-up can drive time explicitly.
func (e *Engine) StepAll(now int64) {
	e.mu.Lock()
	sessions := make([]*Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		sessions = append(sessions, s)
	}
	e.mu.Unlock()

	for _, s := range sessions {
		s.Step(now)
	}
}

// FlushAll synchronously saves every registered session, used at shutdown.
func (e *Engine) FlushAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.sessions {
		if err := s.Flush(); err != nil {
			slog.Error("final save failed", "player", s.Player.ID, "error", err)
		}
	}
}
