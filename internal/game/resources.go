// Package game provides the static catalog: resource kinds, building,
// research, ship, defense, officer, talent and artifact definitions.
package game

// ResourceKind identifies one of the tracked resource streams.
type ResourceKind uint8

const (
	ResourceMetal     ResourceKind = iota // primary ore
	ResourceCrystal                       // secondary ore
	ResourceDeuterium                     // fuel, also consumed by fleet travel
	ResourceEnergy                        // derived balance, never stored
	ResourceDarkMatter                    // non-tradable premium currency
)

// Cost is a resource price triplet. Energy and dark matter are never part
// of a construction cost.
type Cost struct {
	Metal     int `json:"metal"`
	Crystal   int `json:"crystal"`
	Deuterium int `json:"deuterium"`
}

// Scale multiplies a cost by a unit count.
func (c Cost) Scale(n int) Cost {
	return Cost{Metal: c.Metal * n, Crystal: c.Crystal * n, Deuterium: c.Deuterium * n}
}

// Total returns the summed value of the triplet, used for scoring.
func (c Cost) Total() int {
	return c.Metal + c.Crystal + c.Deuterium
}

// Flow describes a production or consumption stream attached to a building:
// base rate and growth factor for the given resource kind.
type Flow struct {
	Kind   ResourceKind `json:"kind"`
	Base   float64      `json:"base"`
	Factor float64      `json:"factor"`
}
