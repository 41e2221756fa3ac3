package game

// UnitStats holds the combat and logistics attributes shared by ships and
// defensive structures.
type UnitStats struct {
	Attack   int
	Shield   int
	Hull     int
	Capacity int // cargo units, 0 for defenses
}

// UnitDef is the static description of a ship or defense type. Units exist
// at rest only as per-type counts; they are expanded into individual combat
// entities during battle resolution.
type UnitDef struct {
	ID       string
	Name     string
	BaseCost Cost
	Stats    UnitStats

	// RapidFire maps an opposing unit type to its rapid-fire value n:
	// after hitting that type the shooter re-fires with probability (n-1)/n.
	RapidFire map[string]int

	BasePoints int
}

// Ship identifiers.
const (
	ShipLightFighter   = "light_fighter"
	ShipHeavyFighter   = "heavy_fighter"
	ShipCruiser        = "cruiser"
	ShipBattleship     = "battleship"
	ShipSmallCargo     = "small_cargo"
	ShipLargeCargo     = "large_cargo"
	ShipRecycler       = "recycler"
	ShipColonyShip     = "colony_ship"
	ShipEspionageProbe = "espionage_probe"
	ShipSolarSatellite = "solar_satellite"
	ShipBomber         = "bomber"
	ShipDestroyer      = "destroyer"
)

// Defense identifiers.
const (
	DefenseRocketLauncher = "rocket_launcher"
	DefenseLightLaser     = "light_laser"
	DefenseHeavyLaser     = "heavy_laser"
	DefenseGaussCannon    = "gauss_cannon"
	DefenseIonCannon      = "ion_cannon"
	DefensePlasmaTurret   = "plasma_turret"
	DefenseShieldDome     = "shield_dome"
)

// Ships is the buildable fleet catalog.
var Ships = []UnitDef{
	{
		ID: ShipLightFighter, Name: "Light Fighter",
		BaseCost: Cost{Metal: 3000, Crystal: 1000},
		Stats:    UnitStats{Attack: 50, Shield: 10, Hull: 400, Capacity: 50},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
		},
		BasePoints: 4,
	},
	{
		ID: ShipHeavyFighter, Name: "Heavy Fighter",
		BaseCost: Cost{Metal: 6000, Crystal: 4000},
		Stats:    UnitStats{Attack: 150, Shield: 25, Hull: 1000, Capacity: 100},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5, ShipSmallCargo: 3,
		},
		BasePoints: 10,
	},
	{
		ID: ShipCruiser, Name: "Cruiser",
		BaseCost: Cost{Metal: 20000, Crystal: 7000, Deuterium: 2000},
		Stats:    UnitStats{Attack: 400, Shield: 50, Hull: 2700, Capacity: 800},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
			ShipLightFighter: 6, DefenseRocketLauncher: 10,
		},
		BasePoints: 29,
	},
	{
		ID: ShipBattleship, Name: "Battleship",
		BaseCost: Cost{Metal: 45000, Crystal: 15000},
		Stats:    UnitStats{Attack: 1000, Shield: 200, Hull: 6000, Capacity: 1500},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
		},
		BasePoints: 60,
	},
	{
		ID: ShipSmallCargo, Name: "Small Cargo",
		BaseCost: Cost{Metal: 2000, Crystal: 2000},
		Stats:    UnitStats{Attack: 5, Shield: 10, Hull: 400, Capacity: 5000},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
		},
		BasePoints: 4,
	},
	{
		ID: ShipLargeCargo, Name: "Large Cargo",
		BaseCost: Cost{Metal: 6000, Crystal: 6000},
		Stats:    UnitStats{Attack: 5, Shield: 25, Hull: 1200, Capacity: 25000},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
		},
		BasePoints: 12,
	},
	{
		ID: ShipRecycler, Name: "Recycler",
		BaseCost: Cost{Metal: 10000, Crystal: 6000, Deuterium: 2000},
		Stats:    UnitStats{Attack: 1, Shield: 10, Hull: 1600, Capacity: 20000},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
		},
		BasePoints: 18,
	},
	{
		ID: ShipColonyShip, Name: "Colony Ship",
		BaseCost: Cost{Metal: 10000, Crystal: 20000, Deuterium: 10000},
		Stats:    UnitStats{Attack: 50, Shield: 100, Hull: 3000, Capacity: 7500},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
		},
		BasePoints: 40,
	},
	{
		ID: ShipEspionageProbe, Name: "Espionage Probe",
		BaseCost: Cost{Crystal: 1000},
		Stats:    UnitStats{Attack: 0, Shield: 0, Hull: 100, Capacity: 5},
		BasePoints: 1,
	},
	{
		ID: ShipSolarSatellite, Name: "Solar Satellite",
		BaseCost: Cost{Crystal: 2000, Deuterium: 500},
		Stats:    UnitStats{Attack: 1, Shield: 1, Hull: 200},
		BasePoints: 2,
	},
	{
		ID: ShipBomber, Name: "Bomber",
		BaseCost: Cost{Metal: 50000, Crystal: 25000, Deuterium: 15000},
		Stats:    UnitStats{Attack: 1000, Shield: 500, Hull: 7500, Capacity: 500},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5,
			DefenseRocketLauncher: 20, DefenseLightLaser: 20, DefenseHeavyLaser: 10,
		},
		BasePoints: 90,
	},
	{
		ID: ShipDestroyer, Name: "Destroyer",
		BaseCost: Cost{Metal: 60000, Crystal: 50000, Deuterium: 15000},
		Stats:    UnitStats{Attack: 2000, Shield: 500, Hull: 11000, Capacity: 2000},
		RapidFire: map[string]int{
			ShipEspionageProbe: 5, ShipSolarSatellite: 5, DefenseLightLaser: 10,
		},
		BasePoints: 125,
	},
}

// Defenses is the static-defense catalog. Defenses never leave the planet
// and never rapid-fire.
var Defenses = []UnitDef{
	{
		ID: DefenseRocketLauncher, Name: "Rocket Launcher",
		BaseCost:   Cost{Metal: 2000},
		Stats:      UnitStats{Attack: 80, Shield: 20, Hull: 200},
		BasePoints: 2,
	},
	{
		ID: DefenseLightLaser, Name: "Light Laser",
		BaseCost:   Cost{Metal: 1500, Crystal: 500},
		Stats:      UnitStats{Attack: 100, Shield: 25, Hull: 200},
		BasePoints: 2,
	},
	{
		ID: DefenseHeavyLaser, Name: "Heavy Laser",
		BaseCost:   Cost{Metal: 6000, Crystal: 2000},
		Stats:      UnitStats{Attack: 250, Shield: 100, Hull: 800},
		BasePoints: 8,
	},
	{
		ID: DefenseGaussCannon, Name: "Gauss Cannon",
		BaseCost:   Cost{Metal: 20000, Crystal: 15000, Deuterium: 2000},
		Stats:      UnitStats{Attack: 1100, Shield: 200, Hull: 3500},
		BasePoints: 37,
	},
	{
		ID: DefenseIonCannon, Name: "Ion Cannon",
		BaseCost:   Cost{Metal: 5000, Crystal: 3000},
		Stats:      UnitStats{Attack: 150, Shield: 500, Hull: 800},
		BasePoints: 8,
	},
	{
		ID: DefensePlasmaTurret, Name: "Plasma Turret",
		BaseCost:   Cost{Metal: 50000, Crystal: 50000, Deuterium: 30000},
		Stats:      UnitStats{Attack: 3000, Shield: 300, Hull: 10000},
		BasePoints: 130,
	},
	{
		ID: DefenseShieldDome, Name: "Shield Dome",
		BaseCost:   Cost{Metal: 10000, Crystal: 10000},
		Stats:      UnitStats{Attack: 1, Shield: 2000, Hull: 2000},
		BasePoints: 20,
	},
}

var (
	shipIndex    = indexUnits(Ships)
	defenseIndex = indexUnits(Defenses)
)

func indexUnits(defs []UnitDef) map[string]*UnitDef {
	m := make(map[string]*UnitDef, len(defs))
	for i := range defs {
		m[defs[i].ID] = &defs[i]
	}
	return m
}

// ShipByID returns the ship definition for id, or nil.
func ShipByID(id string) *UnitDef {
	return shipIndex[id]
}

// DefenseByID returns the defense definition for id, or nil.
func DefenseByID(id string) *UnitDef {
	return defenseIndex[id]
}

// UnitByID looks up id among ships first, then defenses.
func UnitByID(id string) *UnitDef {
	if d := shipIndex[id]; d != nil {
		return d
	}
	return defenseIndex[id]
}
