package game

// OfficerDef describes a recruitable officer. Officers are account-wide and
// paid for with dark matter.
type OfficerDef struct {
	ID   string
	Name string
	Cost int // dark matter
}

// Officer identifiers.
const (
	OfficerEngineer  = "officer_engineer"  // +10% energy production while active
	OfficerCommander = "officer_commander" // narrative/quality-of-life only
	OfficerAdmiral   = "officer_admiral"
)

// EngineerEnergyBonus is the energy production multiplier granted by an
// active engineer officer.
const EngineerEnergyBonus = 1.1

// Officers is the recruitable officer catalog.
var Officers = []OfficerDef{
	{ID: OfficerEngineer, Name: "Engineer", Cost: 500},
	{ID: OfficerCommander, Name: "Commander", Cost: 300},
	{ID: OfficerAdmiral, Name: "Admiral", Cost: 400},
}

// OfficerByID returns the officer definition for id, or nil.
func OfficerByID(id string) *OfficerDef {
	for i := range Officers {
		if Officers[i].ID == id {
			return &Officers[i]
		}
	}
	return nil
}

// TalentDef describes an account-wide levelled talent.
type TalentDef struct {
	ID       string
	Name     string
	MaxLevel int
}

// Talent identifiers.
const (
	TalentMineBoost = "talent_mine_boost" // +2% ore/fuel mine output per level
	TalentSpyTech   = "talent_spy_tech"   // +1 espionage strength per level
)

// MineBoostPerLevel is the per-level production multiplier increment of the
// mine boost talent.
const MineBoostPerLevel = 0.02

// Talents is the talent catalog.
var Talents = []TalentDef{
	{ID: TalentMineBoost, Name: "Deep Core Mining", MaxLevel: 10},
	{ID: TalentSpyTech, Name: "Signal Interception", MaxLevel: 10},
}

// ArtifactDef describes a relic discoverable by expeditions.
type ArtifactDef struct {
	ID   string
	Name string
}

// Artifacts is the expedition discovery pool.
var Artifacts = []ArtifactDef{
	{ID: "artifact_stellar_compass", Name: "Stellar Compass"},
	{ID: "artifact_void_lens", Name: "Void Lens"},
	{ID: "artifact_ancient_core", Name: "Ancient Reactor Core"},
	{ID: "artifact_phase_beacon", Name: "Phase Beacon"},
	{ID: "artifact_relic_hull", Name: "Relic Hull Fragment"},
}
