package engine

import (
	"github.com/avray/starforge/internal/formula"
	"github.com/avray/starforge/internal/game"
)

// PointsBreakdown is the account score split by category. Structure points
// come from catalog base points; economy points are total resources ever
// spent, divided by a thousand.
type PointsBreakdown struct {
	Total     int `json:"total"`
	Buildings int `json:"buildings"`
	Research  int `json:"research"`
	Fleet     int `json:"fleet"`
	Defense   int `json:"defense"`
	Economy   int `json:"economy"`
}

// economyPoints sums the cumulative cost of reaching level from zero.
func economyPoints(base game.Cost, growth float64, level int) int {
	spent := 0
	for l := 0; l < level; l++ {
		c := formula.CostTriplet(base, growth, l)
		spent += c.Total()
	}
	return spent / 1000
}

// Score computes the player's points from current holdings.
func Score(p *Player) PointsBreakdown {
	var b PointsBreakdown

	for _, planet := range p.Planets {
		for id, state := range planet.Buildings {
			def := game.BuildingByID(id)
			if def == nil || state.Level == 0 {
				continue
			}
			b.Buildings += def.BasePoints * state.Level
			b.Economy += economyPoints(def.BaseCost, def.CostFactor, state.Level)
		}
		for id, count := range planet.Fleet {
			def := game.ShipByID(id)
			if def == nil || count == 0 {
				continue
			}
			b.Fleet += def.BasePoints * count
			b.Economy += def.BaseCost.Total() * count / 1000
		}
		for id, count := range planet.Defense {
			def := game.DefenseByID(id)
			if def == nil || count == 0 {
				continue
			}
			b.Defense += def.BasePoints * count
			b.Economy += def.BaseCost.Total() * count / 1000
		}
	}

	for id, level := range p.Research {
		def := game.ResearchByID(id)
		if def == nil || level == 0 {
			continue
		}
		b.Research += def.BasePoints * level
		b.Economy += economyPoints(def.BaseCost, def.CostFactor, level)
	}

	b.Total = b.Buildings + b.Research + b.Fleet + b.Defense
	return b
}
