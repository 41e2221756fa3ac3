package engine

import (
	"math"

	"github.com/google/uuid"

	"github.com/avray/starforge/internal/formula"
	"github.com/avray/starforge/internal/galaxy"
	"github.com/avray/starforge/internal/game"
)

// canAfford reports whether a planet's stored balances cover a cost.
// Availability is checked immediately before the spend; no overdraft.
func canAfford(p *Planet, c game.Cost) bool {
	return p.Resources.Metal >= float64(c.Metal) &&
		p.Resources.Crystal >= float64(c.Crystal) &&
		p.Resources.Deuterium >= float64(c.Deuterium)
}

func spend(p *Planet, c game.Cost) {
	p.Resources.Metal -= float64(c.Metal)
	p.Resources.Crystal -= float64(c.Crystal)
	p.Resources.Deuterium -= float64(c.Deuterium)
}

// EnqueueBuilding queues the next level of a structure on a planet.
// Resources are deducted at enqueue time; the item gets timestamps
// immediately when the queue is empty, otherwise when promoted.
func (s *Session) EnqueueBuilding(planetID, buildingID string, now int64) error {
	p := s.Player.Planet(planetID)
	def := game.BuildingByID(buildingID)
	if p == nil || def == nil {
		return ErrUnknownEntity
	}
	if len(p.Queue) >= MaxQueueLength {
		return ErrQueueFull
	}
	if def.MoonOnly && !p.Moon {
		return ErrInvalidPlacement
	}
	if p.Moon && !moonAccepts(def) {
		return ErrInvalidPlacement
	}
	if p.FieldsUsed+queuedBuildings(p) >= p.FieldsMax {
		return ErrInvalidPlacement
	}

	// Price the level after anything already queued for this structure.
	targetLevel := p.BuildingLevel(buildingID) + 1
	if queued, ok := queuedLevel(p, buildingID); ok {
		targetLevel = queued + 1
	}
	cost := formula.CostTriplet(def.BaseCost, def.CostFactor, targetLevel-1)
	if !canAfford(p, cost) {
		return ErrInsufficientResources
	}

	robotics := p.BuildingLevel(game.BuildingRobotics)
	duration := formula.ConstructionTime(def.BaseTime, def.TimeFactor, targetLevel, robotics)

	spend(p, cost)
	item := UpgradeItem{
		TargetID:    buildingID,
		Kind:        UpgradeBuilding,
		TargetLevel: targetLevel,
		Duration:    duration,
	}
	if len(p.Queue) == 0 {
		item.StartTime = now
		item.EndTime = now + int64(duration)*1000
	}
	p.Queue = append(p.Queue, item)
	return nil
}

// EnqueueResearch queues the next level of an account technology through a
// planet's queue. Research shares the two-slot queue with buildings; the
// research lab level accelerates it.
func (s *Session) EnqueueResearch(planetID, techID string, now int64) error {
	p := s.Player.Planet(planetID)
	def := game.ResearchByID(techID)
	if p == nil || def == nil {
		return ErrUnknownEntity
	}
	if len(p.Queue) >= MaxQueueLength {
		return ErrQueueFull
	}

	targetLevel := s.Player.ResearchLevel(techID) + 1
	if queued, ok := queuedLevel(p, techID); ok {
		targetLevel = queued + 1
	}
	cost := formula.CostTriplet(def.BaseCost, def.CostFactor, targetLevel-1)
	if !canAfford(p, cost) {
		return ErrInsufficientResources
	}

	lab := p.BuildingLevel(game.BuildingResearchLab)
	duration := formula.ConstructionTime(def.BaseTime, def.TimeFactor, targetLevel, lab)

	spend(p, cost)
	item := UpgradeItem{
		TargetID:    techID,
		Kind:        UpgradeResearch,
		TargetLevel: targetLevel,
		Duration:    duration,
	}
	if len(p.Queue) == 0 {
		item.StartTime = now
		item.EndTime = now + int64(duration)*1000
	}
	p.Queue = append(p.Queue, item)
	return nil
}

// BuildUnits adds count ships or defenses to a planet's roster, paid in
// full up front.
func (s *Session) BuildUnits(planetID, unitID string, count int) error {
	p := s.Player.Planet(planetID)
	def := game.UnitByID(unitID)
	if p == nil || def == nil || count <= 0 {
		return ErrUnknownEntity
	}
	cost := def.BaseCost.Scale(count)
	if !canAfford(p, cost) {
		return ErrInsufficientResources
	}
	spend(p, cost)

	if game.ShipByID(unitID) != nil {
		if p.Fleet == nil {
			p.Fleet = make(map[string]int)
		}
		p.Fleet[unitID] += count
	} else {
		if p.Defense == nil {
			p.Defense = make(map[string]int)
		}
		p.Defense[unitID] += count
	}
	return nil
}

// DispatchMission launches a fleet from a planet. Travel time and fuel are
// computed here and fixed for the mission's lifetime; fuel and any cargo
// payload are deducted at dispatch, not at arrival.
func (s *Session) DispatchMission(planetID string, kind MissionKind, roster map[string]int, target galaxy.Coord, payload Payload, now int64) (*Mission, error) {
	p := s.Player.Planet(planetID)
	if p == nil {
		return nil, ErrUnknownEntity
	}
	if kind == MissionReturn {
		return nil, ErrUnknownEntity // return missions are engine-spawned
	}

	total := 0
	for id, count := range roster {
		if count < 0 || game.ShipByID(id) == nil {
			return nil, ErrUnknownEntity
		}
		if p.Fleet[id] < count {
			return nil, ErrInsufficientFleet
		}
		total += count
	}
	if total == 0 {
		return nil, ErrInsufficientFleet
	}
	if kind == MissionColonize && roster[game.ShipColonyShip] == 0 {
		return nil, ErrInsufficientFleet
	}

	distance := galaxy.Distance(p.Coord, target)
	fuel := formula.FuelCost(roster, distance)
	if p.Resources.Deuterium < float64(fuel+payload.Deuterium) {
		return nil, ErrInsufficientFuel
	}
	if payload.Deuterium < 0 || payload.Metal < 0 || payload.Crystal < 0 {
		return nil, ErrUnknownEntity
	}
	if p.Resources.Metal < float64(payload.Metal) || p.Resources.Crystal < float64(payload.Crystal) {
		return nil, ErrInsufficientResources
	}
	if payload.Metal+payload.Crystal+payload.Deuterium > formula.CargoCapacity(roster) {
		return nil, ErrInsufficientResources
	}

	p.Resources.Deuterium -= float64(fuel + payload.Deuterium)
	p.Resources.Metal -= float64(payload.Metal)
	p.Resources.Crystal -= float64(payload.Crystal)
	for id, count := range roster {
		p.Fleet[id] -= count
	}

	m := &Mission{
		ID:          uuid.NewString(),
		Kind:        kind,
		Fleet:       copyRoster(roster),
		Source:      p.Coord,
		Target:      target,
		DepartTime:  now,
		ArrivalTime: now + int64(formula.TravelDuration(distance))*1000,
		Payload:     payload,
	}
	s.Player.Missions = append(s.Player.Missions, m)
	return m, nil
}

// SetThrottle adjusts a building's production dial, 0-100 in steps of ten.
func (s *Session) SetThrottle(planetID, buildingID string, pct int) error {
	p := s.Player.Planet(planetID)
	if p == nil || game.BuildingByID(buildingID) == nil {
		return ErrUnknownEntity
	}
	if pct < 0 || pct > 100 || pct%10 != 0 {
		return ErrInvalidThrottle
	}
	p.buildingState(buildingID).ThrottlePct = pct
	return nil
}

// RecruitOfficer activates an officer for dark matter.
func (s *Session) RecruitOfficer(officerID string) error {
	def := game.OfficerByID(officerID)
	if def == nil {
		return ErrUnknownEntity
	}
	if s.Player.Officers[officerID] {
		return nil // already active
	}
	if s.Player.DarkMatter < def.Cost {
		return ErrInsufficientResources
	}
	s.Player.DarkMatter -= def.Cost
	if s.Player.Officers == nil {
		s.Player.Officers = make(map[string]bool)
	}
	s.Player.Officers[officerID] = true
	return nil
}

// Merchant exchange weights: one crystal is worth two metal, one
// deuterium three.
var tradeWeight = map[game.ResourceKind]float64{
	game.ResourceMetal:     1,
	game.ResourceCrystal:   2,
	game.ResourceDeuterium: 3,
}

// Trade swaps resources at the merchant's fixed ratios. The offered side
// must cover the requested side's value, and the planet must hold the
// offered amounts.
func (s *Session) Trade(planetID string, give, receive Payload) error {
	p := s.Player.Planet(planetID)
	if p == nil {
		return ErrUnknownEntity
	}
	if give.Metal < 0 || give.Crystal < 0 || give.Deuterium < 0 ||
		receive.Metal < 0 || receive.Crystal < 0 || receive.Deuterium < 0 {
		return ErrUnknownEntity
	}
	if p.Resources.Metal < float64(give.Metal) ||
		p.Resources.Crystal < float64(give.Crystal) ||
		p.Resources.Deuterium < float64(give.Deuterium) {
		return ErrInsufficientResources
	}

	giveValue := float64(give.Metal)*tradeWeight[game.ResourceMetal] +
		float64(give.Crystal)*tradeWeight[game.ResourceCrystal] +
		float64(give.Deuterium)*tradeWeight[game.ResourceDeuterium]
	receiveValue := float64(receive.Metal)*tradeWeight[game.ResourceMetal] +
		float64(receive.Crystal)*tradeWeight[game.ResourceCrystal] +
		float64(receive.Deuterium)*tradeWeight[game.ResourceDeuterium]
	if receiveValue > giveValue || math.IsNaN(receiveValue) {
		return ErrInsufficientResources
	}

	// Credited resources obey storage caps like any other inflow; the
	// overflow is forfeit.
	caps := p.StorageCaps(formula.StorageCapacity)
	p.Resources.Metal = clamp(p.Resources.Metal+float64(receive.Metal-give.Metal), caps.Metal)
	p.Resources.Crystal = clamp(p.Resources.Crystal+float64(receive.Crystal-give.Crystal), caps.Crystal)
	p.Resources.Deuterium = clamp(p.Resources.Deuterium+float64(receive.Deuterium-give.Deuterium), caps.Deuterium)
	return nil
}

// RenamePlanet sets a planet's display name.
func (s *Session) RenamePlanet(planetID, name string) error {
	p := s.Player.Planet(planetID)
	if p == nil {
		return ErrUnknownEntity
	}
	p.Name = name
	return nil
}

// SetVacation toggles vacation mode. While on vacation no ticks are
// scheduled; in-flight missions and queue items freeze at their last
// computed timestamps and resume from wall clock on reactivation.
func (s *Session) SetVacation(on bool) {
	s.Player.Vacation = on
}

// MarkReportRead toggles the read flag of a report.
func (s *Session) MarkReportRead(reportID string) error {
	for _, r := range s.Player.Reports {
		if r.ID == reportID {
			r.Read = true
			return nil
		}
	}
	return ErrUnknownEntity
}

func copyRoster(roster map[string]int) map[string]int {
	out := make(map[string]int, len(roster))
	for id, count := range roster {
		if count > 0 {
			out[id] = count
		}
	}
	return out
}
