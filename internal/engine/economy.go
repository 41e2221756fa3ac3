package engine

import (
	"github.com/avray/starforge/internal/formula"
	"github.com/avray/starforge/internal/game"
)

// mineBuildings are the structures the mine-boost talent applies to.
var mineBuildings = map[string]bool{
	game.BuildingMetalMine:   true,
	game.BuildingCrystalMine: true,
	game.BuildingDeutSynth:   true,
}

// TickEconomy advances one planet's resource balances by dt seconds.
//
// Energy is settled first: producer output (officer-boosted, plus solar
// satellites) against consumer draw. A deficit throttles all non-energy
// production by produced/consumed for this tick; energy producers are never
// throttled by their own deficiency. Stored resources then accrue, clamped
// to storage capacity; overflow is discarded, not banked.
func TickEconomy(owner *Player, p *Planet, dt float64) {
	caps := p.StorageCaps(formula.StorageCapacity)

	energyBonus := 1.0
	if owner.Officers[game.OfficerEngineer] {
		energyBonus = game.EngineerEnergyBonus
	}
	mineBonus := 1 + float64(owner.TalentLevel(game.TalentMineBoost))*game.MineBoostPerLevel

	produced := 0.0
	consumed := 0.0
	for _, def := range game.Buildings {
		level := p.BuildingLevel(def.ID)
		if level == 0 {
			continue
		}
		throttle := p.Throttle(def.ID)

		if def.Production != nil && def.Production.Kind == game.ResourceEnergy {
			rate := formula.Production(def.Production.Base, def.Production.Factor, level, game.ResourceEnergy, p.Temperature, throttle)
			produced += float64(rate) * energyBonus
		}
		if def.Consumption != nil && def.Consumption.Kind == game.ResourceEnergy {
			consumed += float64(formula.Consumption(def.Consumption.Base, def.Consumption.Factor, level, throttle))
		}
	}

	// Solar satellites contribute flat energy per unit.
	if sats := p.Fleet[game.ShipSolarSatellite]; sats > 0 {
		produced += float64(sats * formula.SatelliteEnergy(p.Temperature.Max))
	}

	efficiency := 1.0
	if produced < consumed && consumed > 0 {
		efficiency = produced / consumed
		if efficiency < 0 {
			efficiency = 0
		}
	}

	for _, def := range game.Buildings {
		level := p.BuildingLevel(def.ID)
		if level == 0 || def.Production == nil || def.Production.Kind == game.ResourceEnergy {
			continue
		}
		throttle := p.Throttle(def.ID)
		rate := formula.Production(def.Production.Base, def.Production.Factor, level, def.Production.Kind, p.Temperature, throttle)

		bonus := 1.0
		if mineBuildings[def.ID] {
			bonus = mineBonus
		}
		amount := float64(rate) * dt * efficiency * bonus

		switch def.Production.Kind {
		case game.ResourceMetal:
			p.Resources.Metal = clamp(p.Resources.Metal+amount, caps.Metal)
		case game.ResourceCrystal:
			p.Resources.Crystal = clamp(p.Resources.Crystal+amount, caps.Crystal)
		case game.ResourceDeuterium:
			p.Resources.Deuterium = clamp(p.Resources.Deuterium+amount, caps.Deuterium)
		}
	}

	// Energy is a live balance, not a stock.
	p.Resources.Energy = int(produced) - int(consumed)
	p.Resources.EnergyProduced = int(produced)
}

// clamp caps a balance at storage capacity without ever pushing an
// already-overfull balance further up.
func clamp(value float64, cap int) float64 {
	if value > float64(cap) {
		return float64(cap)
	}
	return value
}
