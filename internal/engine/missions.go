package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/avray/starforge/internal/combat"
	"github.com/avray/starforge/internal/formula"
	"github.com/avray/starforge/internal/galaxy"
	"github.com/avray/starforge/internal/game"
)

// Expedition outcome thresholds on a uniform [0,1) roll.
const (
	expeditionWindfall  = 0.6 // above: resource windfall
	expeditionArtifact  = 0.4 // above: artifact discovery
	expeditionNothing   = 0.2 // above: nothing found
	// at or below expeditionNothing: total loss, no return mission
)

// Espionage disclosure tiers: strength differential required to reveal
// each section of the target.
const (
	spyTierFleet    = 2
	spyTierDefense  = 3
	spyTierBuilding = 5
	spyTierResearch = 7
)

// Fraction of a target's lootable resources plundered on victory, before
// the randomized draw and cargo clamp.
const plunderShare = 0.5

// advanceMissions resolves every mission whose arrival time has passed.
// Arrival-side failures degrade to an empty-result report; a mission is
// never left stuck unresolved.
func (s *Session) advanceMissions(now int64) {
	pending := s.Player.Missions
	s.Player.Missions = nil // resolution appends spawned return missions here

	var active []*Mission
	for _, m := range pending {
		if m.ArrivalTime > now {
			active = append(active, m)
			continue
		}
		if m.Kind == MissionReturn {
			s.mergeReturn(m)
			continue // terminal: discarded after merging
		}
		s.resolveArrival(m, now)
	}
	s.Player.Missions = append(active, s.Player.Missions...)
}

// resolveArrival applies a mission's arrival-side effect and files a
// report. Exactly one transition per mission.
func (s *Session) resolveArrival(m *Mission, now int64) {
	switch m.Kind {
	case MissionAttack:
		s.resolveAttack(m, now)
	case MissionRecycle:
		s.resolveRecycle(m, now)
	case MissionColonize:
		s.resolveColonize(m, now)
	case MissionExpedition:
		s.resolveExpedition(m, now)
	case MissionSpy:
		s.resolveSpy(m, now)
	case MissionTransport:
		s.spawnReturn(m, m.Fleet, m.Payload, now)
		s.fileReport(now, m.Kind, "Transport complete",
			fmt.Sprintf("The convoy reached %s and is heading home.", m.Target), nil, nil)
	default:
		slog.Warn("mission with unknown kind resolved as no-op", "mission", m.ID, "kind", m.Kind)
		s.spawnReturn(m, m.Fleet, m.Payload, now)
	}
}

func (s *Session) resolveAttack(m *Mission, now int64) {
	intel := s.Targets.Intel(m.Target)
	outcome := combat.Resolve(m.Fleet, intel.Fleet, intel.Defense, s.rng)

	// Debris from both sides' losses accumulates at the battle site.
	if outcome.Debris > 0 && s.Registry != nil {
		if err := s.Registry.AddDebris(m.Target, galaxy.SplitDebris(outcome.Debris)); err != nil {
			slog.Error("debris registration failed", "coord", m.Target.String(), "error", err)
		}
	}

	survivors := outcome.Attackers
	var loot Payload
	if outcome.Winner == combat.SideAttacker {
		loot = s.rollPlunder(intel.Resources, survivors)
	}

	var title, body string
	switch outcome.Winner {
	case combat.SideAttacker:
		title = "Victory"
		body = fmt.Sprintf("The enemy at %s was crushed. Plundered %s metal, %s crystal.",
			m.Target, humanize.Comma(int64(loot.Metal)), humanize.Comma(int64(loot.Crystal)))
		if outcome.MoonRoll {
			body += "\n\nThe debris cloud has coalesced into a moon."
		}
	case combat.SideDefender:
		title = "Defeat"
		body = fmt.Sprintf("The fleet sent to %s was annihilated.", m.Target)
	default:
		title = "Stalemate"
		body = fmt.Sprintf("The battle at %s ended without a victor.", m.Target)
	}
	s.fileReport(now, m.Kind, title, body, payloadPtr(loot), &outcome)

	// Only survivors come home; a wiped-out roster spawns no return.
	if countRoster(survivors) > 0 {
		s.spawnReturn(m, survivors, loot, now)
	}
}

// rollPlunder draws the randomized loot fraction against the defender's
// balances and clamps it to the surviving fleet's cargo space.
func (s *Session) rollPlunder(available Payload, survivors map[string]int) Payload {
	fraction := plunderShare * (0.5 + s.rng.Float64()*0.5)
	loot := Payload{
		Metal:   int(float64(available.Metal) * fraction),
		Crystal: int(float64(available.Crystal) * fraction),
	}
	capacity := formula.CargoCapacity(survivors)
	if loot.Metal+loot.Crystal > capacity {
		// Fill metal first, crystal with what remains.
		if loot.Metal > capacity {
			loot.Metal = capacity
		}
		loot.Crystal = capacity - loot.Metal
	}
	return loot
}

func (s *Session) resolveRecycle(m *Mission, now int64) {
	capacity := formula.CargoCapacity(m.Fleet)
	var harvested galaxy.Debris
	if s.Registry != nil {
		var err error
		harvested, err = s.Registry.HarvestDebris(m.Target, capacity)
		if err != nil {
			// Degrade to an empty haul rather than stranding the fleet.
			slog.Error("debris harvest failed", "coord", m.Target.String(), "error", err)
			harvested = galaxy.Debris{}
		}
	}

	loot := Payload{Metal: harvested.Metal, Crystal: harvested.Crystal}
	body := fmt.Sprintf("Recyclers swept %s and recovered %s metal, %s crystal.",
		m.Target, humanize.Comma(int64(loot.Metal)), humanize.Comma(int64(loot.Crystal)))
	if harvested.Total() == 0 {
		body = fmt.Sprintf("The debris field at %s was empty.", m.Target)
	}
	s.fileReport(now, m.Kind, "Recycling run", body, payloadPtr(loot), nil)
	s.spawnReturn(m, m.Fleet, loot, now)
}

func (s *Session) resolveColonize(m *Mission, now int64) {
	if s.Targets.Occupied(m.Target) || s.Player.PlanetAt(m.Target) != nil {
		// Target invalid: empty-result report, fleet comes home.
		s.fileReport(now, m.Kind, "Colonization failed",
			fmt.Sprintf("The slot at %s is already occupied.", m.Target), nil, nil)
		s.spawnReturn(m, m.Fleet, Payload{}, now)
		return
	}

	planet := NewPlanet(m.Target, "Colony")
	s.Player.AddPlanet(planet)

	s.fileReport(now, m.Kind, "Colonization successful",
		fmt.Sprintf("A new colony has been founded at [%s].", m.Target), nil, nil)
	s.spawnReturn(m, m.Fleet, Payload{}, now)
}

func (s *Session) resolveExpedition(m *Mission, now int64) {
	roll := s.rng.Float64()
	switch {
	case roll > expeditionWindfall:
		loot := Payload{Metal: 5000, Crystal: 2000, Deuterium: 500}
		s.fileReport(now, m.Kind, "Expedition report",
			"The expedition found an ancient ship graveyard and salvaged its cargo holds full.", &loot, nil)
		s.spawnReturn(m, m.Fleet, loot, now)
	case roll > expeditionArtifact:
		artifact := game.Artifacts[s.rng.Intn(len(game.Artifacts))]
		s.Player.Inventory = append(s.Player.Inventory, artifact.ID)
		s.fileReport(now, m.Kind, "Expedition report",
			fmt.Sprintf("The expedition recovered a rare artifact: %s.", artifact.Name), nil, nil)
		s.spawnReturn(m, m.Fleet, Payload{}, now)
	case roll > expeditionNothing:
		s.fileReport(now, m.Kind, "Expedition report",
			"The expedition found nothing of interest in the void.", nil, nil)
		s.spawnReturn(m, m.Fleet, Payload{}, now)
	default:
		// Total loss: the roster is gone, no return mission.
		s.fileReport(now, m.Kind, "Expedition lost",
			"The fleet vanished into a rift. No survivors.", nil, nil)
	}
}

func (s *Session) resolveSpy(m *Mission, now int64) {
	intel := s.Targets.Intel(m.Target)
	strength := s.Player.ResearchLevel(game.ResearchEspionage) + s.Player.TalentLevel(game.TalentSpyTech)
	diff := strength - intel.SpyLevel

	if diff < 0 {
		// Detected: probes destroyed, no return.
		s.fileReport(now, m.Kind, "Espionage report",
			fmt.Sprintf("Signal jammed near %s. The probes were detected and destroyed.", m.Target), nil, nil)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sector report for %s.\n", m.Target)
	fmt.Fprintf(&b, "Espionage strength: %d vs %d\n", strength, intel.SpyLevel)
	fmt.Fprintf(&b, "Resources: metal %s, crystal %s, deuterium %s\n",
		humanize.Comma(int64(intel.Resources.Metal)),
		humanize.Comma(int64(intel.Resources.Crystal)),
		humanize.Comma(int64(intel.Resources.Deuterium)))

	writeTier(&b, "Fleet", intel.Fleet, diff >= spyTierFleet)
	writeTier(&b, "Defense", intel.Defense, diff >= spyTierDefense)
	writeTier(&b, "Buildings", intel.Buildings, diff >= spyTierBuilding)
	writeTier(&b, "Technologies", intel.Research, diff >= spyTierResearch)

	s.fileReport(now, m.Kind, "Espionage report", b.String(), nil, nil)
	s.spawnReturn(m, m.Fleet, Payload{}, now)
}

func writeTier(b *strings.Builder, section string, entries map[string]int, disclosed bool) {
	if !disclosed {
		fmt.Fprintf(b, "\n%s: insufficient data.\n", section)
		return
	}
	fmt.Fprintf(b, "\n%s:\n", section)
	if len(entries) == 0 {
		fmt.Fprintf(b, "- none\n")
		return
	}
	for id, n := range entries {
		fmt.Fprintf(b, "- %s: %d\n", id, n)
	}
}

// spawnReturn schedules the homeward leg: same flight time as the outbound
// leg, roster and payload fixed at spawn.
func (s *Session) spawnReturn(m *Mission, roster map[string]int, loot Payload, now int64) {
	if countRoster(roster) == 0 {
		return
	}
	ret := &Mission{
		ID:          uuid.NewString(),
		Kind:        MissionReturn,
		Fleet:       copyRoster(roster),
		Source:      m.Target,
		Target:      m.Source,
		DepartTime:  now,
		ArrivalTime: now + (m.ArrivalTime - m.DepartTime),
		Payload:     loot,
	}
	s.Player.Missions = append(s.Player.Missions, ret)
}

// mergeReturn folds an arrived return mission back into its home planet:
// roster counts rejoin the stationed fleet and carried resources are added
// under the storage caps.
func (s *Session) mergeReturn(m *Mission) {
	home := s.Player.PlanetAt(m.Target)
	if home == nil {
		// Home planet gone (should not happen inside one account); fall
		// back to the current planet so units are never lost.
		home = s.Player.Planet(s.Player.CurrentPlanetID)
		if home == nil {
			slog.Error("return mission with no home planet", "mission", m.ID)
			return
		}
	}
	if home.Fleet == nil {
		home.Fleet = make(map[string]int)
	}
	for id, count := range m.Fleet {
		home.Fleet[id] += count
	}

	caps := home.StorageCaps(formula.StorageCapacity)
	home.Resources.Metal = clamp(home.Resources.Metal+float64(m.Payload.Metal), caps.Metal)
	home.Resources.Crystal = clamp(home.Resources.Crystal+float64(m.Payload.Crystal), caps.Crystal)
	home.Resources.Deuterium = clamp(home.Resources.Deuterium+float64(m.Payload.Deuterium), caps.Deuterium)
}

// NewPlanet creates a planet at the given coordinates with climate and
// field capacity derived deterministically from its position, and the
// standard starting stock.
func NewPlanet(c galaxy.Coord, name string) *Planet {
	return &Planet{
		ID:          uuid.NewString(),
		Name:        name,
		Coord:       c,
		Temperature: galaxy.TemperatureAt(c),
		FieldsMax:   galaxy.FieldsAt(c),
		Resources:   ResourceBag{Metal: 500, Crystal: 300, Deuterium: 100},
		Buildings:   make(map[string]*BuildingState),
		Fleet:       make(map[string]int),
		Defense:     make(map[string]int),
	}
}

func (s *Session) fileReport(now int64, kind MissionKind, title, body string, loot *Payload, outcome *combat.Outcome) {
	s.Player.Reports = append(s.Player.Reports, &Report{
		ID:     uuid.NewString(),
		Time:   now,
		Kind:   kind,
		Title:  title,
		Body:   body,
		Loot:   loot,
		Combat: outcome,
	})
}

func payloadPtr(p Payload) *Payload {
	if p.Empty() {
		return nil
	}
	return &p
}

func countRoster(roster map[string]int) int {
	total := 0
	for _, n := range roster {
		total += n
	}
	return total
}
