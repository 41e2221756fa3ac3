package game

// BuildingDef is the static description of one upgradeable structure.
// Level state lives on the planet, not here.
type BuildingDef struct {
	ID         string
	Name       string
	BaseCost   Cost
	CostFactor float64
	BaseTime   int     // seconds for level 1
	TimeFactor float64 // duration growth per level

	// At most one of Production/Consumption per stream is set. A building
	// with an energy Production is an energy producer; one with an energy
	// Consumption is throttled by the planet's energy efficiency.
	Production  *Flow
	Consumption *Flow

	MoonOnly      bool // buildable only on moons
	AllowedOnMoon bool // non-moon building that moons still accept
	BasePoints    int
}

// Building identifiers. Keep these stable: they are persisted inside player
// snapshots and referenced from queue items.
const (
	BuildingMetalMine      = "metal_mine"
	BuildingCrystalMine    = "crystal_mine"
	BuildingDeutSynth      = "deuterium_synthesizer"
	BuildingSolarPlant     = "solar_plant"
	BuildingRobotics       = "robotics_factory"
	BuildingResearchLab    = "research_lab"
	BuildingShipyard       = "shipyard"
	BuildingMetalStorage   = "metal_storage"
	BuildingCrystalStorage = "crystal_storage"
	BuildingDeutTank       = "deuterium_tank"
	BuildingTerraformer    = "terraformer"
	BuildingMissileSilo    = "missile_silo"
	BuildingLunarBase      = "lunar_base"
	BuildingSensorPhalanx  = "sensor_phalanx"
	BuildingJumpGate       = "jump_gate"
)

// Buildings is the full structure catalog in display order.
var Buildings = []BuildingDef{
	{
		ID: BuildingMetalMine, Name: "Metal Mine",
		BaseCost: Cost{Metal: 60, Crystal: 15}, CostFactor: 1.5,
		BaseTime: 60, TimeFactor: 1.5,
		Production:  &Flow{Kind: ResourceMetal, Base: 30, Factor: 1.1},
		Consumption: &Flow{Kind: ResourceEnergy, Base: 10, Factor: 1.1},
		BasePoints:  1,
	},
	{
		ID: BuildingCrystalMine, Name: "Crystal Mine",
		BaseCost: Cost{Metal: 48, Crystal: 24}, CostFactor: 1.6,
		BaseTime: 80, TimeFactor: 1.5,
		Production:  &Flow{Kind: ResourceCrystal, Base: 20, Factor: 1.1},
		Consumption: &Flow{Kind: ResourceEnergy, Base: 10, Factor: 1.1},
		BasePoints:  1,
	},
	{
		ID: BuildingDeutSynth, Name: "Deuterium Synthesizer",
		BaseCost: Cost{Metal: 225, Crystal: 75}, CostFactor: 1.5,
		BaseTime: 120, TimeFactor: 1.6,
		Production:  &Flow{Kind: ResourceDeuterium, Base: 10, Factor: 1.1},
		Consumption: &Flow{Kind: ResourceEnergy, Base: 20, Factor: 1.1},
		BasePoints:  1,
	},
	{
		ID: BuildingSolarPlant, Name: "Solar Plant",
		BaseCost: Cost{Metal: 75, Crystal: 30}, CostFactor: 1.5,
		BaseTime: 90, TimeFactor: 1.5,
		Production: &Flow{Kind: ResourceEnergy, Base: 20, Factor: 1.1},
		BasePoints: 1,
	},
	{
		ID: BuildingRobotics, Name: "Robotics Factory",
		BaseCost: Cost{Metal: 400, Crystal: 120, Deuterium: 200}, CostFactor: 2.0,
		BaseTime: 300, TimeFactor: 1.8,
		AllowedOnMoon: true,
		BasePoints:    2,
	},
	{
		ID: BuildingResearchLab, Name: "Research Lab",
		BaseCost: Cost{Metal: 200, Crystal: 400, Deuterium: 200}, CostFactor: 2.0,
		BaseTime: 360, TimeFactor: 1.8,
		BasePoints: 2,
	},
	{
		ID: BuildingShipyard, Name: "Shipyard",
		BaseCost: Cost{Metal: 400, Crystal: 200, Deuterium: 100}, CostFactor: 2.0,
		BaseTime: 300, TimeFactor: 1.8,
		BasePoints: 2,
	},
	{
		ID: BuildingMetalStorage, Name: "Metal Storage",
		BaseCost: Cost{Metal: 1000}, CostFactor: 2.0,
		BaseTime: 180, TimeFactor: 1.6,
		BasePoints: 1,
	},
	{
		ID: BuildingCrystalStorage, Name: "Crystal Storage",
		BaseCost: Cost{Metal: 1000, Crystal: 500}, CostFactor: 2.0,
		BaseTime: 200, TimeFactor: 1.6,
		BasePoints: 1,
	},
	{
		ID: BuildingDeutTank, Name: "Deuterium Tank",
		BaseCost: Cost{Metal: 1000, Crystal: 1000}, CostFactor: 2.0,
		BaseTime: 220, TimeFactor: 1.6,
		BasePoints: 1,
	},
	{
		ID: BuildingTerraformer, Name: "Terraformer",
		BaseCost: Cost{Metal: 0, Crystal: 50000, Deuterium: 100000}, CostFactor: 2.0,
		BaseTime: 7200, TimeFactor: 2.0,
		BasePoints: 5,
	},
	{
		ID: BuildingMissileSilo, Name: "Missile Silo",
		BaseCost: Cost{Metal: 20000, Crystal: 20000, Deuterium: 1000}, CostFactor: 2.0,
		BaseTime: 1800, TimeFactor: 1.8,
		AllowedOnMoon: true,
		BasePoints:    3,
	},
	{
		ID: BuildingLunarBase, Name: "Lunar Base",
		BaseCost: Cost{Metal: 20000, Crystal: 40000, Deuterium: 20000}, CostFactor: 2.0,
		BaseTime: 3600, TimeFactor: 1.8,
		MoonOnly:   true,
		BasePoints: 5,
	},
	{
		ID: BuildingSensorPhalanx, Name: "Sensor Phalanx",
		BaseCost: Cost{Metal: 20000, Crystal: 40000, Deuterium: 20000}, CostFactor: 2.0,
		BaseTime: 3600, TimeFactor: 1.8,
		MoonOnly:   true,
		BasePoints: 5,
	},
	{
		ID: BuildingJumpGate, Name: "Jump Gate",
		BaseCost: Cost{Metal: 2000000, Crystal: 4000000, Deuterium: 2000000}, CostFactor: 2.0,
		BaseTime: 86400, TimeFactor: 2.0,
		MoonOnly:   true,
		BasePoints: 10,
	},
}

var buildingIndex = indexBuildings()

func indexBuildings() map[string]*BuildingDef {
	m := make(map[string]*BuildingDef, len(Buildings))
	for i := range Buildings {
		m[Buildings[i].ID] = &Buildings[i]
	}
	return m
}

// BuildingByID returns the static definition for id, or nil.
func BuildingByID(id string) *BuildingDef {
	return buildingIndex[id]
}
