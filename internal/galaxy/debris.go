package galaxy

// Debris is the harvestable remains of destroyed units at a coordinate:
// primary and secondary ore only, fuel burns up.
type Debris struct {
	Metal   int `json:"metal"`
	Crystal int `json:"crystal"`
}

// Total returns the combined debris amount.
func (d Debris) Total() int {
	return d.Metal + d.Crystal
}

// DebrisMetalShare is the fraction of combat debris registered as primary
// ore; the remainder is secondary.
const DebrisMetalShare = 0.7

// SplitDebris divides a raw debris amount into the registry's two streams.
func SplitDebris(amount int) Debris {
	metal := int(float64(amount) * DebrisMetalShare)
	return Debris{Metal: metal, Crystal: amount - metal}
}

// Registry is the shared galaxy collaborator. Player simulations are
// otherwise independent; combat and recycling cross player boundaries only
// through this interface, whose implementation serializes concurrent
// writers to the same coordinate.
type Registry interface {
	// GetDebris reports the field at a coordinate, zero-valued when empty.
	GetDebris(coord Coord) (Debris, error)

	// AddDebris merges additional debris into the field at a coordinate.
	AddDebris(coord Coord, d Debris) error

	// HarvestDebris removes and returns up to capacity units from the
	// field, metal first.
	HarvestDebris(coord Coord, capacity int) (Debris, error)
}
