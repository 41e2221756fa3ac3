package engine

import (
	"encoding/binary"
	"math/rand"

	"lukechampine.com/blake3"

	"github.com/avray/starforge/internal/galaxy"
	"github.com/avray/starforge/internal/game"
)

// NPCTargets resolves unclaimed coordinates to computer-held garrisons.
// The garrison is a pure function of the coordinate: every visit to the
// same slot finds the same defenders, without a galaxy-wide database.
type NPCTargets struct{}

func coordSeed(c galaxy.Coord) int64 {
	sum := blake3.Sum256([]byte(c.String()))
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// Intel derives the garrison at a coordinate from its seed.
func (NPCTargets) Intel(c galaxy.Coord) TargetIntel {
	rng := rand.New(rand.NewSource(coordSeed(c)))

	defense := map[string]int{}
	for _, id := range []string{game.DefenseRocketLauncher, game.DefenseLightLaser, game.DefenseHeavyLaser} {
		if n := rng.Intn(5); n > 0 {
			defense[id] = n
		}
	}
	fleet := map[string]int{}
	if n := rng.Intn(10); n > 2 {
		fleet[game.ShipLightFighter] = n
	}

	return TargetIntel{
		Fleet:   fleet,
		Defense: defense,
		Resources: Payload{
			Metal:   5_000 + rng.Intn(20_000),
			Crystal: 2_000 + rng.Intn(8_000),
		},
		SpyLevel: 3,
		Buildings: map[string]int{
			game.BuildingMetalMine:   4 + rng.Intn(12),
			game.BuildingCrystalMine: 3 + rng.Intn(10),
			game.BuildingSolarPlant:  4 + rng.Intn(10),
		},
		Research: map[string]int{
			game.ResearchWeapons:   rng.Intn(8),
			game.ResearchShielding: rng.Intn(8),
		},
	}
}

// Occupied reports whether a colony can not be founded at the coordinate.
// NPC garrisons do not hold slots.
func (NPCTargets) Occupied(c galaxy.Coord) bool {
	return false
}
