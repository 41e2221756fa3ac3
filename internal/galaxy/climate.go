package galaxy

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/avray/starforge/internal/game"
)

// ClimateSeed keeps planet climates stable across universes: the same
// coordinate always yields the same temperature range.
const ClimateSeed = 1977

// climateNoise is evaluated lazily against fixed coordinates, so sharing
// one instance is safe for concurrent readers.
var climateNoise = opensimplex.NewNormalized(ClimateSeed)

// TemperatureAt derives a planet's temperature range from its coordinates.
// Position dominates (inner slots are hot, outer slots cold), with smooth
// noise variation across systems so neighbouring planets differ.
func TemperatureAt(c Coord) game.Temperature {
	// Base gradient: position 1 ~ +120°C max, position 15 ~ -100°C max.
	base := 140 - 16*c.Position

	// Noise in [0,1) shifts the range by up to ±20°C.
	n := climateNoise.Eval2(float64(c.Galaxy*500+c.System), float64(c.Position))
	shift := int(n*40) - 20

	max := base + shift
	return game.Temperature{Min: max - 40, Max: max}
}

// FieldsAt derives a planet's buildable field capacity from its
// coordinates: temperate middle slots are larger worlds.
func FieldsAt(c Coord) int {
	distFromMiddle := abs(c.Position - 8)
	fields := 188 - 12*distFromMiddle

	n := climateNoise.Eval2(float64(c.Position*31), float64(c.Galaxy*500+c.System))
	fields += int(n * 40)

	if fields < 60 {
		fields = 60
	}
	return fields
}
