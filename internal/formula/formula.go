// Package formula provides the pure balance formulas: costs, production and
// consumption rates, storage capacity, construction duration and fleet fuel.
// Every function is total and bit-reproducible given identical inputs, so
// the same numbers can be recomputed anywhere for display or replay.
package formula

import (
	"math"

	"github.com/avray/starforge/internal/game"
)

// GlobalSpeedFactor is the single dial governing overall economy pacing.
// All non-energy production is multiplied by it. Raise it for a faster
// universe, lower it for a grindier one.
const GlobalSpeedFactor = 0.09

// FullThrottle is the default per-building production setting.
const FullThrottle = 100

// Cost returns the price of reaching level+1 from level for an entity with
// the given base cost and growth factor: floor(base * growth^level).
// Monotonic non-decreasing in level for growth >= 1.
func Cost(base int, growth float64, level int) int {
	return int(math.Floor(float64(base) * math.Pow(growth, float64(level))))
}

// CostTriplet applies Cost to each component of a base cost.
func CostTriplet(base game.Cost, growth float64, level int) game.Cost {
	return game.Cost{
		Metal:     Cost(base.Metal, growth, level),
		Crystal:   Cost(base.Crystal, growth, level),
		Deuterium: Cost(base.Deuterium, growth, level),
	}
}

// Production returns the per-second output of a producing building at the
// given level, in integer units.
//
// The raw rate base*level*growth^level is adjusted per resource kind:
// energy gains a temperature bonus 1+avgTemp/200 (floored at 0.1) and skips
// the global speed factor; fuel is scaled by max(0.1, 1.44-0.004*maxTemp)
// times the global speed factor; everything else is scaled by the global
// speed factor alone. The throttle percentage applies last.
func Production(base, growth float64, level int, kind game.ResourceKind, temp game.Temperature, throttlePct int) int {
	raw := base * float64(level) * math.Pow(growth, float64(level))
	ratio := float64(throttlePct) / 100

	switch kind {
	case game.ResourceEnergy:
		bonus := 1 + temp.Avg()/200
		if bonus < 0.1 {
			bonus = 0.1
		}
		return int(math.Floor(raw * bonus * ratio))
	case game.ResourceDeuterium:
		factor := 1.44 - 0.004*float64(temp.Max)
		if factor < 0.1 {
			factor = 0.1
		}
		return int(math.Floor(raw * factor * GlobalSpeedFactor * ratio))
	default:
		return int(math.Floor(raw * GlobalSpeedFactor * ratio))
	}
}

// Consumption returns the per-second draw of a consuming building at the
// given level: floor(base*level*growth^level * throttle).
func Consumption(base, growth float64, level int, throttlePct int) int {
	raw := base * float64(level) * math.Pow(growth, float64(level))
	return int(math.Floor(raw * float64(throttlePct) / 100))
}

// StorageCapacity returns how much of a resource a planet can hold given
// its storage building level: 10k with no storage built, tripling from
// 100k per level after that.
func StorageCapacity(level int) int {
	if level == 0 {
		return 10_000
	}
	return int(math.Floor(100_000 * math.Pow(3, float64(level-1))))
}

// ConstructionTime returns the duration in seconds to reach targetLevel,
// shortened by the accelerator building (robotics factory for structures,
// research lab for technologies). Never less than one second.
func ConstructionTime(baseTime int, timeGrowth float64, targetLevel, acceleratorLevel int) int {
	levelIndex := targetLevel - 1
	if levelIndex < 0 {
		levelIndex = 0
	}
	seconds := float64(baseTime) * math.Pow(timeGrowth, float64(levelIndex)) / float64(acceleratorLevel+1)
	if seconds < 1 {
		return 1
	}
	return int(math.Round(seconds))
}

// FuelCost returns the deuterium burned by a fleet roster covering the
// given distance: floor(10 + totalCargoCapacity/5000 * distance).
func FuelCost(roster map[string]int, distance int) int {
	capacity := 0
	for id, count := range roster {
		if def := game.ShipByID(id); def != nil {
			capacity += def.Stats.Capacity * count
		}
	}
	return int(math.Floor(10 + float64(capacity)/5000*float64(distance)))
}

// TravelDuration returns the one-way flight time in seconds for a mission
// covering the given distance.
func TravelDuration(distance int) int {
	return 10 + distance
}

// SatelliteEnergy returns the energy contributed by one solar satellite
// orbiting a planet with the given maximum temperature.
func SatelliteEnergy(maxTemp int) int {
	return int(math.Floor(30 * (1 + float64(maxTemp)/200)))
}

// CargoCapacity returns the total cargo space of a roster.
func CargoCapacity(roster map[string]int) int {
	capacity := 0
	for id, count := range roster {
		if def := game.ShipByID(id); def != nil {
			capacity += def.Stats.Capacity * count
		}
	}
	return capacity
}
