// Package combat resolves fleet-versus-fleet battles. Rosters are expanded
// into individual entities, fought over a bounded number of rounds, and
// collapsed back into per-type survivor counts. The resolver owns no state:
// randomness comes from the injected source, so a fixed seed replays the
// same battle.
package combat

import (
	"math/rand"

	"github.com/avray/starforge/internal/game"
)

// MaxRounds bounds the simulation; whoever is still standing afterwards
// holds the field.
const MaxRounds = 6

// Debris accounting: this fraction of every destroyed unit's max hull ends
// up as a harvestable field at the battle coordinates.
const DebrisRatio = 0.3

// MoonChanceCap is the maximum percent chance of a moon forming from debris.
const MoonChanceCap = 20

// Side identifies a battle participant.
type Side uint8

const (
	SideAttacker Side = iota
	SideDefender
	SideDraw // mutual annihilation, or both sides surviving all rounds
)

// Entity is one unit instance, alive only for the duration of a resolution.
type Entity struct {
	Type      string
	Hull      int
	MaxHull   int
	Shield    int
	MaxShield int
	Attack    int
	RapidFire map[string]int
}

// Round records the state of one combat round for the report log.
type Round struct {
	Number         int            `json:"number"`
	Attackers      map[string]int `json:"attackers"` // counts at round start
	Defenders      map[string]int `json:"defenders"`
	AttackerLosses map[string]int `json:"attacker_losses"`
	DefenderLosses map[string]int `json:"defender_losses"`
}

// Outcome is the structured result of one battle.
type Outcome struct {
	Rounds    []Round        `json:"rounds"`
	Winner    Side           `json:"winner"`
	Attackers map[string]int `json:"attackers"` // survivors by type
	Defenders map[string]int `json:"defenders"`
	Debris    int            `json:"debris"`
	MoonRoll  bool           `json:"moon_roll"` // a moon formed from the debris
}

// expand turns a per-type count roster into individual entities. Entities
// are laid out in catalog order, never map order: target selection indexes
// into this slice, so the layout must be identical on every invocation for
// a fixed seed to replay the same battle. Unknown types are skipped;
// callers validate rosters at dispatch time.
func expand(roster map[string]int, out []Entity) []Entity {
	for _, catalog := range [][]game.UnitDef{game.Ships, game.Defenses} {
		for i := range catalog {
			def := &catalog[i]
			for n := 0; n < roster[def.ID]; n++ {
				out = append(out, Entity{
					Type:      def.ID,
					Hull:      def.Stats.Hull,
					MaxHull:   def.Stats.Hull,
					Shield:    def.Stats.Shield,
					MaxShield: def.Stats.Shield,
					Attack:    def.Stats.Attack,
					RapidFire: def.RapidFire,
				})
			}
		}
	}
	return out
}

func countByType(entities []Entity) map[string]int {
	counts := make(map[string]int)
	for i := range entities {
		counts[entities[i].Type]++
	}
	return counts
}

func totalMaxHull(entities []Entity) int {
	total := 0
	for i := range entities {
		total += entities[i].MaxHull
	}
	return total
}

// Resolve fights the attacker roster against the defender's fleet and
// static defenses and returns the outcome. rng drives target selection,
// rapid-fire re-rolls and the moon roll only; the accounting rules are
// deterministic.
func Resolve(attacker, defenderFleet, defenderDefense map[string]int, rng *rand.Rand) Outcome {
	attackers := expand(attacker, nil)
	defenders := expand(defenderFleet, nil)
	defenders = expand(defenderDefense, defenders)

	initialAttackerHull := totalMaxHull(attackers)
	initialDefenderHull := totalMaxHull(defenders)

	var log []Round
	for r := 0; r < MaxRounds; r++ {
		if len(attackers) == 0 || len(defenders) == 0 {
			break
		}

		// Snapshot round-start counts before either salvo so per-round
		// losses come out right even though the salvos run sequentially.
		startAttackers := countByType(attackers)
		startDefenders := countByType(defenders)

		salvo(attackers, defenders, rng)
		salvo(defenders, attackers, rng)

		attackers = removeDead(attackers)
		defenders = removeDead(defenders)

		endAttackers := countByType(attackers)
		endDefenders := countByType(defenders)

		log = append(log, Round{
			Number:         r + 1,
			Attackers:      startAttackers,
			Defenders:      startDefenders,
			AttackerLosses: diffCounts(startAttackers, endAttackers),
			DefenderLosses: diffCounts(startDefenders, endDefenders),
		})

		// Shields fully recharge between rounds; hull damage carries over.
		for i := range attackers {
			attackers[i].Shield = attackers[i].MaxShield
		}
		for i := range defenders {
			defenders[i].Shield = defenders[i].MaxShield
		}
	}

	winner := SideDraw
	switch {
	case len(attackers) > 0 && len(defenders) == 0:
		winner = SideAttacker
	case len(defenders) > 0 && len(attackers) == 0:
		winner = SideDefender
	}

	lostHull := (initialAttackerHull - totalMaxHull(attackers)) +
		(initialDefenderHull - totalMaxHull(defenders))
	debris := int(float64(lostHull) * DebrisRatio)

	moonChance := debris / 100_000
	if moonChance > MoonChanceCap {
		moonChance = MoonChanceCap
	}
	moon := moonChance > 0 && rng.Float64()*100 < float64(moonChance)

	return Outcome{
		Rounds:    log,
		Winner:    winner,
		Attackers: countByType(attackers),
		Defenders: countByType(defenders),
		Debris:    debris,
		MoonRoll:  moon,
	}
}

// salvo has every shooter fire at the opposing side. Each shot picks a live
// target uniformly at random; a hit on a type present in the shooter's
// rapid-fire table re-rolls another shot with probability (n-1)/n, per shot.
func salvo(shooters, targets []Entity, rng *rand.Rand) {
	for s := range shooters {
		shooter := &shooters[s]
		shots := 1
		for shots > 0 && len(targets) > 0 {
			target := &targets[rng.Intn(len(targets))]
			if target.Hull > 0 {
				if target.Shield < shooter.Attack {
					target.Hull -= shooter.Attack - target.Shield
				} else {
					// Absorbed; the shield takes a small chip.
					target.Shield -= shooter.Attack / 100
				}
			}
			shots--

			if rf := shooter.RapidFire[target.Type]; rf > 1 {
				if rng.Float64() < float64(rf-1)/float64(rf) {
					shots++
				}
			}
		}
	}
}

func removeDead(entities []Entity) []Entity {
	alive := entities[:0]
	for i := range entities {
		if entities[i].Hull > 0 {
			alive = append(alive, entities[i])
		}
	}
	return alive
}

func diffCounts(start, end map[string]int) map[string]int {
	losses := make(map[string]int, len(start))
	for id, n := range start {
		losses[id] = n - end[id]
	}
	return losses
}
