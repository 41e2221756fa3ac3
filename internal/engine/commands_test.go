package engine

import (
	"errors"
	"testing"

	"github.com/avray/starforge/internal/formula"
	"github.com/avray/starforge/internal/galaxy"
	"github.com/avray/starforge/internal/game"
)

func TestBuildUnits(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]
	home.Resources = ResourceBag{Metal: 10_000, Crystal: 4_000}

	if err := s.BuildUnits(home.ID, game.DefenseRocketLauncher, 2); err != nil {
		t.Fatalf("build defense: %v", err)
	}
	if home.Defense[game.DefenseRocketLauncher] != 2 {
		t.Fatalf("defense count = %d, want 2", home.Defense[game.DefenseRocketLauncher])
	}
	if home.Resources.Metal != 6_000 {
		t.Fatalf("metal = %.0f after two launchers, want 6000", home.Resources.Metal)
	}

	if err := s.BuildUnits(home.ID, game.ShipLightFighter, 1); err != nil {
		t.Fatalf("build ship: %v", err)
	}
	if home.Fleet[game.ShipLightFighter] != 1 {
		t.Fatalf("fleet count = %d, want 1", home.Fleet[game.ShipLightFighter])
	}

	if err := s.BuildUnits(home.ID, game.ShipDestroyer, 5); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("err = %v, want ErrInsufficientResources", err)
	}
	if err := s.BuildUnits(home.ID, "dreadnought", 1); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("err = %v, want ErrUnknownEntity for unknown unit", err)
	}
	if err := s.BuildUnits(home.ID, game.ShipLightFighter, 0); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("err = %v, want ErrUnknownEntity for zero count", err)
	}
}

func TestDispatchDeductsFuelAndPayload(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipSmallCargo] = 2
	home.Resources = ResourceBag{Metal: 500, Crystal: 300, Deuterium: 1_000}

	target := galaxy.Coord{Galaxy: 1, System: 50, Position: 8}
	roster := map[string]int{game.ShipSmallCargo: 2}
	distance := galaxy.Distance(home.Coord, target)
	fuel := formula.FuelCost(roster, distance)

	now := int64(1_000_000)
	m, err := s.DispatchMission(home.ID, MissionTransport, roster, target, Payload{Metal: 200}, now)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if home.Resources.Deuterium != 1_000-float64(fuel) {
		t.Fatalf("deuterium = %.0f, want %d burned", home.Resources.Deuterium, fuel)
	}
	if home.Resources.Metal != 300 {
		t.Fatalf("metal = %.0f, want payload loaded out", home.Resources.Metal)
	}
	if home.Fleet[game.ShipSmallCargo] != 0 {
		t.Fatalf("cargo ships still stationed: %d", home.Fleet[game.ShipSmallCargo])
	}
	if want := now + int64(formula.TravelDuration(distance))*1000; m.ArrivalTime != want {
		t.Fatalf("arrival = %d, want %d", m.ArrivalTime, want)
	}
	if len(s.Player.Missions) != 1 {
		t.Fatalf("missions = %d, want 1", len(s.Player.Missions))
	}
}

func TestDispatchValidation(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipSmallCargo] = 1
	home.Resources.Deuterium = 1_000
	target := galaxy.Coord{Galaxy: 1, System: 50, Position: 8}

	cases := []struct {
		name    string
		kind    MissionKind
		roster  map[string]int
		payload Payload
		want    error
	}{
		{"empty roster", MissionTransport, map[string]int{}, Payload{}, ErrInsufficientFleet},
		{"more than stationed", MissionTransport, map[string]int{game.ShipSmallCargo: 3}, Payload{}, ErrInsufficientFleet},
		{"unknown ship", MissionTransport, map[string]int{"dreadnought": 1}, Payload{}, ErrUnknownEntity},
		{"defense cannot fly", MissionAttack, map[string]int{game.DefenseRocketLauncher: 1}, Payload{}, ErrUnknownEntity},
		{"colonize needs colony ship", MissionColonize, map[string]int{game.ShipSmallCargo: 1}, Payload{}, ErrInsufficientFleet},
		{"payload over cargo space", MissionTransport, map[string]int{game.ShipSmallCargo: 1}, Payload{Metal: 6_000}, ErrInsufficientResources},
		{"return is engine-only", MissionReturn, map[string]int{game.ShipSmallCargo: 1}, Payload{}, ErrUnknownEntity},
	}
	for _, tc := range cases {
		if _, err := s.DispatchMission(home.ID, tc.kind, tc.roster, target, tc.payload, 1); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}

	home.Resources.Deuterium = 0
	if _, err := s.DispatchMission(home.ID, MissionTransport, map[string]int{game.ShipSmallCargo: 1}, target, Payload{}, 1); !errors.Is(err, ErrInsufficientFuel) {
		t.Fatalf("err = %v, want ErrInsufficientFuel", err)
	}
}

func TestSetThrottle(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]

	for _, pct := range []int{-10, 110, 55} {
		if err := s.SetThrottle(home.ID, game.BuildingMetalMine, pct); !errors.Is(err, ErrInvalidThrottle) {
			t.Errorf("pct %d: err = %v, want ErrInvalidThrottle", pct, err)
		}
	}
	if err := s.SetThrottle(home.ID, game.BuildingMetalMine, 50); err != nil {
		t.Fatalf("set 50: %v", err)
	}
	if home.Throttle(game.BuildingMetalMine) != 50 {
		t.Fatalf("throttle = %d, want 50", home.Throttle(game.BuildingMetalMine))
	}
	// Unset buildings run at full output.
	if home.Throttle(game.BuildingCrystalMine) != 100 {
		t.Fatalf("default throttle = %d, want 100", home.Throttle(game.BuildingCrystalMine))
	}
}

func TestRecruitOfficer(t *testing.T) {
	s, _ := newTestSession(nil)
	def := game.OfficerByID(game.OfficerEngineer)

	if err := s.RecruitOfficer(game.OfficerEngineer); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("err = %v, want ErrInsufficientResources with no dark matter", err)
	}

	s.Player.DarkMatter = def.Cost + 100
	if err := s.RecruitOfficer(game.OfficerEngineer); err != nil {
		t.Fatalf("recruit: %v", err)
	}
	if !s.Player.Officers[game.OfficerEngineer] {
		t.Fatalf("officer not active after recruitment")
	}
	if s.Player.DarkMatter != 100 {
		t.Fatalf("dark matter = %d, want 100", s.Player.DarkMatter)
	}

	// Recruiting an active officer is a paid-nothing no-op.
	if err := s.RecruitOfficer(game.OfficerEngineer); err != nil {
		t.Fatalf("re-recruit: %v", err)
	}
	if s.Player.DarkMatter != 100 {
		t.Fatalf("re-recruit charged dark matter")
	}
}

func TestTrade(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]
	home.Resources = ResourceBag{Metal: 1_000, Crystal: 0, Deuterium: 0}

	// 1000 metal buys 500 crystal at 2:1.
	if err := s.Trade(home.ID, Payload{Metal: 1_000}, Payload{Crystal: 500}); err != nil {
		t.Fatalf("trade: %v", err)
	}
	if home.Resources.Metal != 0 || home.Resources.Crystal != 500 {
		t.Fatalf("balances after trade: %.0f metal, %.0f crystal", home.Resources.Metal, home.Resources.Crystal)
	}

	// Asking for more value than offered is rejected.
	home.Resources = ResourceBag{Metal: 1_000}
	if err := s.Trade(home.ID, Payload{Metal: 1_000}, Payload{Crystal: 501}); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("overpriced trade err = %v", err)
	}
	// So is offering resources the planet does not hold.
	if err := s.Trade(home.ID, Payload{Deuterium: 10}, Payload{Metal: 30}); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("uncovered trade err = %v", err)
	}

	// Credited resources stop at the storage cap (10,000 at level 0);
	// the overflow is forfeit.
	home.Resources = ResourceBag{Metal: 9_500, Crystal: 5_000}
	if err := s.Trade(home.ID, Payload{Crystal: 2_000}, Payload{Metal: 4_000}); err != nil {
		t.Fatalf("capped trade: %v", err)
	}
	if home.Resources.Metal != 10_000 {
		t.Fatalf("metal after capped trade = %.0f, want 10000", home.Resources.Metal)
	}
	if home.Resources.Crystal != 3_000 {
		t.Fatalf("crystal after capped trade = %.0f, want 3000", home.Resources.Crystal)
	}
}

func TestRenameAndReportFlags(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]

	if err := s.RenamePlanet(home.ID, "Arrakis"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if home.Name != "Arrakis" {
		t.Fatalf("name = %q", home.Name)
	}
	if err := s.RenamePlanet("nope", "x"); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("rename unknown planet err = %v", err)
	}

	s.fileReport(1, MissionSpy, "t", "b", nil, nil)
	id := s.Player.Reports[0].ID
	if err := s.MarkReportRead(id); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !s.Player.Reports[0].Read {
		t.Fatalf("report still unread")
	}
	if err := s.MarkReportRead("nope"); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("mark unknown report err = %v", err)
	}
}
