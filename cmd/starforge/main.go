// Command starforge runs the persistent space-empire simulation server.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/avray/starforge/internal/config"
	"github.com/avray/starforge/internal/engine"
	"github.com/avray/starforge/internal/galaxy"
	"github.com/avray/starforge/internal/game"
	"github.com/avray/starforge/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("starforge simulation server",
		"tick", cfg.TickInterval,
		"speed", cfg.Speed,
	)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Load or Seed Players ──────────────────────────────────────────
	players := loadPlayers(db)
	if len(players) == 0 {
		slog.Info("no saved players, seeding a fresh commander")
		players = append(players, seedPlayer())
	}

	// ── Simulation ────────────────────────────────────────────────────
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng := engine.NewEngine()
	eng.Interval = cfg.TickInterval
	eng.Speed = float64(cfg.Speed)

	for i, p := range players {
		session := engine.NewSession(p, db, engine.NPCTargets{}, db, seed+int64(i))
		eng.Register(session)
	}

	// ── Shutdown ──────────────────────────────────────────────────────
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		slog.Info("shutdown signal received")
		eng.Stop()
	}()

	eng.Run()

	eng.FlushAll()
	slog.Info("state flushed, goodbye")
}

// loadPlayers restores every stored player aggregate. A player whose
// snapshot cannot be read is skipped, not fatal; the rest of the galaxy
// keeps running.
func loadPlayers(db *persistence.DB) []*engine.Player {
	ids, err := db.ListPlayerIDs()
	if err != nil {
		slog.Error("failed to list players", "error", err)
		os.Exit(1)
	}

	var players []*engine.Player
	for _, id := range ids {
		snapshot, err := db.LoadPlayerSnapshot(id)
		if err != nil {
			slog.Error("failed to load player", "player", id, "error", err)
			continue
		}
		p, err := engine.LoadPlayer(snapshot)
		if err != nil {
			slog.Error("failed to decode player", "player", id, "error", err)
			continue
		}
		players = append(players, p)
		slog.Info("player restored", "player", p.Name, "planets", len(p.Planets))
	}
	return players
}

// seedPlayer creates the demo commander with a small working economy.
func seedPlayer() *engine.Player {
	p := engine.NewPlayer("Commander", galaxy.Coord{Galaxy: 1, System: 42, Position: 8})
	home := p.Planets[0]
	home.Buildings[game.BuildingMetalMine] = &engine.BuildingState{Level: 1, ThrottlePct: 100}
	home.Buildings[game.BuildingSolarPlant] = &engine.BuildingState{Level: 1, ThrottlePct: 100}
	home.FieldsUsed = 2
	return p
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
