package game

// ResearchDef is the static description of one account-wide technology.
type ResearchDef struct {
	ID         string
	Name       string
	BaseCost   Cost
	CostFactor float64
	BaseTime   int // seconds for level 1
	TimeFactor float64
	BasePoints int
}

// Technology identifiers.
const (
	ResearchEnergy     = "energy_tech"
	ResearchLaser      = "laser_tech"
	ResearchIon        = "ion_tech"
	ResearchHyperspace = "hyperspace_tech"
	ResearchEspionage  = "espionage_tech"
	ResearchComputer   = "computer_tech"
	ResearchCombustion = "combustion_drive"
	ResearchImpulse    = "impulse_drive"
	ResearchWeapons    = "weapons_tech"
	ResearchShielding  = "shielding_tech"
	ResearchArmor      = "armor_tech"
	ResearchAstro      = "astrophysics"
)

// Technologies is the full research catalog.
var Technologies = []ResearchDef{
	{ID: ResearchEnergy, Name: "Energy Technology", BaseCost: Cost{Crystal: 800, Deuterium: 400}, CostFactor: 2.0, BaseTime: 300, TimeFactor: 1.8, BasePoints: 2},
	{ID: ResearchLaser, Name: "Laser Technology", BaseCost: Cost{Metal: 200, Crystal: 100}, CostFactor: 2.0, BaseTime: 200, TimeFactor: 1.7, BasePoints: 2},
	{ID: ResearchIon, Name: "Ion Technology", BaseCost: Cost{Metal: 1000, Crystal: 300, Deuterium: 100}, CostFactor: 2.0, BaseTime: 400, TimeFactor: 1.8, BasePoints: 2},
	{ID: ResearchHyperspace, Name: "Hyperspace Technology", BaseCost: Cost{Crystal: 4000, Deuterium: 2000}, CostFactor: 2.0, BaseTime: 1200, TimeFactor: 1.9, BasePoints: 3},
	{ID: ResearchEspionage, Name: "Espionage Technology", BaseCost: Cost{Metal: 200, Crystal: 1000, Deuterium: 200}, CostFactor: 2.0, BaseTime: 300, TimeFactor: 1.7, BasePoints: 2},
	{ID: ResearchComputer, Name: "Computer Technology", BaseCost: Cost{Crystal: 400, Deuterium: 600}, CostFactor: 2.0, BaseTime: 360, TimeFactor: 1.8, BasePoints: 2},
	{ID: ResearchCombustion, Name: "Combustion Drive", BaseCost: Cost{Metal: 400, Deuterium: 600}, CostFactor: 2.0, BaseTime: 240, TimeFactor: 1.7, BasePoints: 2},
	{ID: ResearchImpulse, Name: "Impulse Drive", BaseCost: Cost{Metal: 2000, Crystal: 4000, Deuterium: 600}, CostFactor: 2.0, BaseTime: 600, TimeFactor: 1.8, BasePoints: 3},
	{ID: ResearchWeapons, Name: "Weapons Technology", BaseCost: Cost{Metal: 800, Crystal: 200}, CostFactor: 2.0, BaseTime: 300, TimeFactor: 1.8, BasePoints: 2},
	{ID: ResearchShielding, Name: "Shielding Technology", BaseCost: Cost{Metal: 200, Crystal: 600}, CostFactor: 2.0, BaseTime: 300, TimeFactor: 1.8, BasePoints: 2},
	{ID: ResearchArmor, Name: "Armor Technology", BaseCost: Cost{Metal: 1000}, CostFactor: 2.0, BaseTime: 300, TimeFactor: 1.8, BasePoints: 2},
	{ID: ResearchAstro, Name: "Astrophysics", BaseCost: Cost{Metal: 4000, Crystal: 8000, Deuterium: 4000}, CostFactor: 1.75, BaseTime: 1800, TimeFactor: 1.9, BasePoints: 4},
}

var researchIndex = indexTechnologies()

func indexTechnologies() map[string]*ResearchDef {
	m := make(map[string]*ResearchDef, len(Technologies))
	for i := range Technologies {
		m[Technologies[i].ID] = &Technologies[i]
	}
	return m
}

// ResearchByID returns the static definition for id, or nil.
func ResearchByID(id string) *ResearchDef {
	return researchIndex[id]
}
