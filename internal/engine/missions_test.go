package engine

import (
	"strings"
	"testing"

	"github.com/avray/starforge/internal/combat"
	"github.com/avray/starforge/internal/galaxy"
	"github.com/avray/starforge/internal/game"
)

var farTarget = galaxy.Coord{Galaxy: 1, System: 50, Position: 8}

func lastReport(t *testing.T, s *Session) *Report {
	t.Helper()
	if len(s.Player.Reports) == 0 {
		t.Fatal("no reports filed")
	}
	return s.Player.Reports[len(s.Player.Reports)-1]
}

func TestTransportRoundTrip(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipSmallCargo] = 5
	home.Resources.Deuterium = 1_000
	deutAfterFuel := float64(0)

	now := int64(1_000_000)
	m, err := s.DispatchMission(home.ID, MissionTransport, map[string]int{game.ShipSmallCargo: 5}, farTarget, Payload{Metal: 400}, now)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	deutAfterFuel = home.Resources.Deuterium
	travel := m.ArrivalTime - m.DepartTime

	// Outbound arrival: report filed, homeward leg spawned with the same
	// flight time and the carried payload.
	s.Step(m.ArrivalTime)
	if r := lastReport(t, s); r.Kind != MissionTransport {
		t.Fatalf("report kind = %s", r.Kind)
	}
	if len(s.Player.Missions) != 1 || s.Player.Missions[0].Kind != MissionReturn {
		t.Fatalf("missions after arrival: %+v", s.Player.Missions)
	}
	ret := s.Player.Missions[0]
	if ret.ArrivalTime-ret.DepartTime != travel {
		t.Fatalf("return travel %dms, want %dms", ret.ArrivalTime-ret.DepartTime, travel)
	}
	if ret.Target != home.Coord {
		t.Fatalf("return heads to %s, want %s", ret.Target, home.Coord)
	}

	// Homecoming: roster and cargo rejoin the planet, nothing is lost.
	s.Step(ret.ArrivalTime)
	if len(s.Player.Missions) != 0 {
		t.Fatalf("missions not drained: %d", len(s.Player.Missions))
	}
	if home.Fleet[game.ShipSmallCargo] != 5 {
		t.Fatalf("fleet = %d after round trip, want 5", home.Fleet[game.ShipSmallCargo])
	}
	if home.Resources.Metal != 500 {
		t.Fatalf("metal = %.0f after round trip, want 500", home.Resources.Metal)
	}
	if home.Resources.Deuterium != deutAfterFuel {
		t.Fatalf("deuterium changed after dispatch: %.0f", home.Resources.Deuterium)
	}
}

func TestAttackVictory(t *testing.T) {
	targets := stubTargets{intel: TargetIntel{
		Defense:   map[string]int{game.DefenseRocketLauncher: 1},
		Resources: Payload{Metal: 10_000, Crystal: 4_000},
	}}
	s, reg := newTestSession(targets)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipCruiser] = 10
	home.Resources.Deuterium = 1_000

	m, err := s.DispatchMission(home.ID, MissionAttack, map[string]int{game.ShipCruiser: 10}, farTarget, Payload{}, 1_000_000)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	s.Step(m.ArrivalTime)

	r := lastReport(t, s)
	if r.Title != "Victory" {
		t.Fatalf("title = %q, want Victory", r.Title)
	}
	if r.Combat == nil || r.Combat.Winner != combat.SideAttacker {
		t.Fatalf("combat outcome missing or wrong: %+v", r.Combat)
	}
	if r.Loot == nil || r.Loot.Metal < 2_500 || r.Loot.Metal >= 5_000 {
		t.Fatalf("loot out of plunder range: %+v", r.Loot)
	}

	// One launcher of 200 hull: 60 debris units, split 70/30.
	d, _ := reg.GetDebris(farTarget)
	if d.Metal != 42 || d.Crystal != 18 {
		t.Fatalf("debris = %+v, want {42 18}", d)
	}

	// All ten cruisers survive a lone launcher and fly home with the loot.
	if len(s.Player.Missions) != 1 {
		t.Fatalf("missions = %d, want the return leg", len(s.Player.Missions))
	}
	ret := s.Player.Missions[0]
	if ret.Fleet[game.ShipCruiser] != 10 {
		t.Fatalf("return roster = %+v", ret.Fleet)
	}
	if ret.Payload.Metal != r.Loot.Metal || ret.Payload.Crystal != r.Loot.Crystal {
		t.Fatalf("return payload %+v does not match loot %+v", ret.Payload, *r.Loot)
	}
}

func TestAttackAnnihilationSpawnsNoReturn(t *testing.T) {
	// Probes cannot scratch a launcher; launchers one-shot probes.
	targets := stubTargets{intel: TargetIntel{
		Defense: map[string]int{game.DefenseRocketLauncher: 4},
	}}
	s, _ := newTestSession(targets)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipEspionageProbe] = 1
	home.Resources.Deuterium = 1_000

	m, err := s.DispatchMission(home.ID, MissionAttack, map[string]int{game.ShipEspionageProbe: 1}, farTarget, Payload{}, 1_000_000)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	s.Step(m.ArrivalTime)

	if r := lastReport(t, s); r.Title != "Defeat" {
		t.Fatalf("title = %q, want Defeat", r.Title)
	}
	if len(s.Player.Missions) != 0 {
		t.Fatalf("a wiped-out fleet spawned a return mission")
	}
	if home.Fleet[game.ShipEspionageProbe] != 0 {
		t.Fatalf("destroyed probes reappeared at home")
	}
}

func TestAttackStalemateSurvivorsFlyHome(t *testing.T) {
	// Satellites cannot pierce a dome's shield and the dome cannot pierce
	// theirs, so six rounds pass with no losses on either side.
	targets := stubTargets{intel: TargetIntel{
		Defense: map[string]int{game.DefenseShieldDome: 1},
	}}
	s, _ := newTestSession(targets)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipSolarSatellite] = 3
	home.Resources.Deuterium = 1_000

	m, err := s.DispatchMission(home.ID, MissionAttack, map[string]int{game.ShipSolarSatellite: 3}, farTarget, Payload{}, 1_000_000)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	s.Step(m.ArrivalTime)

	r := lastReport(t, s)
	if r.Title != "Stalemate" {
		t.Fatalf("title = %q, want Stalemate", r.Title)
	}
	if r.Combat == nil || r.Combat.Winner != combat.SideDraw {
		t.Fatalf("combat outcome missing or wrong: %+v", r.Combat)
	}

	// Survivors of a drawn battle still get a homeward leg, empty-handed.
	if len(s.Player.Missions) != 1 {
		t.Fatalf("missions = %d, want the return leg", len(s.Player.Missions))
	}
	ret := s.Player.Missions[0]
	if ret.Fleet[game.ShipSolarSatellite] != 3 {
		t.Fatalf("return roster = %+v", ret.Fleet)
	}
	if ret.Payload != (Payload{}) {
		t.Fatalf("a drawn battle yielded plunder: %+v", ret.Payload)
	}
}

func TestRecycleSweepsFieldAndClampsOnReturn(t *testing.T) {
	s, reg := newTestSession(nil)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipRecycler] = 1
	home.Resources.Deuterium = 1_000
	if err := reg.AddDebris(farTarget, galaxy.Debris{Metal: 12_000, Crystal: 5_000}); err != nil {
		t.Fatalf("seed debris: %v", err)
	}

	m, err := s.DispatchMission(home.ID, MissionRecycle, map[string]int{game.ShipRecycler: 1}, farTarget, Payload{}, 1_000_000)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	s.Step(m.ArrivalTime)

	// 17k debris fits one 20k-capacity recycler: the field is emptied.
	if d, _ := reg.GetDebris(farTarget); d.Total() != 0 {
		t.Fatalf("field not emptied: %+v", d)
	}
	ret := s.Player.Missions[0]
	if ret.Payload.Metal != 12_000 || ret.Payload.Crystal != 5_000 {
		t.Fatalf("harvest payload = %+v", ret.Payload)
	}

	// Home storage is unexpanded: the metal haul overflows and is cut at
	// the cap, crystal fits.
	s.Step(ret.ArrivalTime)
	if home.Resources.Metal != 10_000 {
		t.Fatalf("metal = %.0f, want clamped to 10000", home.Resources.Metal)
	}
	if home.Resources.Crystal != 5_300 {
		t.Fatalf("crystal = %.0f, want 5300", home.Resources.Crystal)
	}
}

func TestColonizeFoundsPlanet(t *testing.T) {
	s, _ := newTestSession(nil)
	home := s.Player.Planets[0]
	home.Fleet[game.ShipColonyShip] = 1
	home.Resources.Deuterium = 1_000

	slot := galaxy.Coord{Galaxy: 2, System: 7, Position: 4}
	m, err := s.DispatchMission(home.ID, MissionColonize, map[string]int{game.ShipColonyShip: 1}, slot, Payload{}, 1_000_000)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	s.Step(m.ArrivalTime)

	colony := s.Player.PlanetAt(slot)
	if colony == nil {
		t.Fatal("no colony founded")
	}
	if colony.FieldsMax != galaxy.FieldsAt(slot) {
		t.Fatalf("colony fields = %d, want %d", colony.FieldsMax, galaxy.FieldsAt(slot))
	}
	if len(s.Player.Planets) != 2 {
		t.Fatalf("planets = %d, want 2", len(s.Player.Planets))
	}
	if r := lastReport(t, s); r.Title != "Colonization successful" {
		t.Fatalf("title = %q", r.Title)
	}
}

func TestColonizeOccupiedSlotFails(t *testing.T) {
	s, _ := newTestSession(stubTargets{occupied: true})
	home := s.Player.Planets[0]
	home.Fleet[game.ShipColonyShip] = 1
	home.Resources.Deuterium = 1_000

	m, err := s.DispatchMission(home.ID, MissionColonize, map[string]int{game.ShipColonyShip: 1}, farTarget, Payload{}, 1_000_000)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	s.Step(m.ArrivalTime)

	if len(s.Player.Planets) != 1 {
		t.Fatalf("colony founded on an occupied slot")
	}
	if r := lastReport(t, s); r.Title != "Colonization failed" {
		t.Fatalf("title = %q", r.Title)
	}
	// The ship itself comes home.
	if len(s.Player.Missions) != 1 || s.Player.Missions[0].Fleet[game.ShipColonyShip] != 1 {
		t.Fatalf("colony ship lost: %+v", s.Player.Missions)
	}
}

func TestExpeditionOutcomes(t *testing.T) {
	outcomes := make(map[string]int)
	for seed := int64(0); seed < 50; seed++ {
		player := testPlayer()
		s := NewSession(player, newMemRegistry(), stubTargets{}, nil, seed)
		home := player.Planets[0]
		home.Fleet[game.ShipSmallCargo] = 1
		home.Resources.Deuterium = 1_000

		m, err := s.DispatchMission(home.ID, MissionExpedition, map[string]int{game.ShipSmallCargo: 1}, farTarget, Payload{}, 1_000_000)
		if err != nil {
			t.Fatalf("seed %d dispatch: %v", seed, err)
		}
		s.Step(m.ArrivalTime)

		r := lastReport(t, s)
		switch {
		case r.Title == "Expedition lost":
			outcomes["lost"]++
			if len(s.Player.Missions) != 0 {
				t.Fatalf("seed %d: lost expedition spawned a return", seed)
			}
		case r.Loot != nil:
			outcomes["windfall"]++
			if len(s.Player.Missions) != 1 || s.Player.Missions[0].Payload.Empty() {
				t.Fatalf("seed %d: windfall return missing cargo", seed)
			}
		case strings.Contains(r.Body, "artifact"):
			outcomes["artifact"]++
			if len(player.Inventory) != 1 {
				t.Fatalf("seed %d: artifact not added to inventory", seed)
			}
		default:
			outcomes["nothing"]++
			if len(s.Player.Missions) != 1 {
				t.Fatalf("seed %d: uneventful expedition did not turn back", seed)
			}
		}
	}
	if len(outcomes) < 3 {
		t.Fatalf("outcome distribution suspiciously narrow over 50 seeds: %v", outcomes)
	}
}

func TestSpyDisclosureTiers(t *testing.T) {
	intel := TargetIntel{
		Fleet:     map[string]int{game.ShipLightFighter: 12},
		Defense:   map[string]int{game.DefenseRocketLauncher: 3},
		Buildings: map[string]int{game.BuildingMetalMine: 9},
		Research:  map[string]int{game.ResearchWeapons: 4},
		Resources: Payload{Metal: 1_234},
		SpyLevel:  0,
	}

	dispatchSpy := func(t *testing.T, s *Session) *Mission {
		t.Helper()
		home := s.Player.Planets[0]
		home.Fleet[game.ShipEspionageProbe] = 2
		home.Resources.Deuterium = 1_000
		m, err := s.DispatchMission(home.ID, MissionSpy, map[string]int{game.ShipEspionageProbe: 2}, farTarget, Payload{}, 1_000_000)
		if err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		return m
	}

	t.Run("full disclosure", func(t *testing.T) {
		s, _ := newTestSession(stubTargets{intel: intel})
		s.Player.Research[game.ResearchEspionage] = 5
		s.Player.Talents[game.TalentSpyTech] = 2

		m := dispatchSpy(t, s)
		s.Step(m.ArrivalTime)

		body := lastReport(t, s).Body
		for _, want := range []string{"metal 1,234", "light_fighter: 12", "rocket_launcher: 3", "metal_mine: 9", "weapons_tech: 4"} {
			if !strings.Contains(body, want) {
				t.Errorf("report missing %q:\n%s", want, body)
			}
		}
		if len(s.Player.Missions) != 1 {
			t.Fatalf("probes did not return")
		}
	})

	t.Run("resources only", func(t *testing.T) {
		shallow := intel
		shallow.SpyLevel = 4
		s, _ := newTestSession(stubTargets{intel: shallow})
		s.Player.Research[game.ResearchEspionage] = 5

		m := dispatchSpy(t, s)
		s.Step(m.ArrivalTime)

		body := lastReport(t, s).Body
		if !strings.Contains(body, "metal 1,234") {
			t.Errorf("resources withheld at tier 1:\n%s", body)
		}
		for _, section := range []string{"Fleet", "Defense", "Buildings", "Technologies"} {
			if !strings.Contains(body, section+": insufficient data") {
				t.Errorf("%s disclosed below its tier:\n%s", section, body)
			}
		}
	})

	t.Run("detected", func(t *testing.T) {
		hard := intel
		hard.SpyLevel = 9
		s, _ := newTestSession(stubTargets{intel: hard})
		s.Player.Research[game.ResearchEspionage] = 5

		m := dispatchSpy(t, s)
		s.Step(m.ArrivalTime)

		if !strings.Contains(lastReport(t, s).Body, "detected and destroyed") {
			t.Errorf("detection report missing")
		}
		if len(s.Player.Missions) != 0 {
			t.Fatalf("destroyed probes spawned a return")
		}
	})
}
