package engine

import (
	"github.com/google/uuid"

	"github.com/avray/starforge/internal/combat"
	"github.com/avray/starforge/internal/galaxy"
	"github.com/avray/starforge/internal/game"
)

func newID() string {
	return uuid.NewString()
}

// ResourceBag holds a planet's stored balances. Ore and fuel are float64
// accumulators so sub-unit production per tick is not lost; energy is a
// live balance recomputed every tick and never banked.
type ResourceBag struct {
	Metal     float64 `json:"metal"`
	Crystal   float64 `json:"crystal"`
	Deuterium float64 `json:"deuterium"`

	Energy         int `json:"energy"`          // produced - consumed, derived
	EnergyProduced int `json:"energy_produced"` // derived, for display

	DarkMatter int `json:"dark_matter"` // account currency mirrored per snapshot
}

// Capacities is the storage ceiling per stored resource, recomputed from
// storage building levels every tick rather than persisted.
type Capacities struct {
	Metal     int
	Crystal   int
	Deuterium int
}

// Payload is an integer resource cargo carried by a mission or granted as
// loot.
type Payload struct {
	Metal     int `json:"metal"`
	Crystal   int `json:"crystal"`
	Deuterium int `json:"deuterium"`
}

// Empty reports whether the payload carries nothing.
func (p Payload) Empty() bool {
	return p.Metal == 0 && p.Crystal == 0 && p.Deuterium == 0
}

// BuildingState is the per-planet dynamic state of one structure.
type BuildingState struct {
	Level       int `json:"level"`
	ThrottlePct int `json:"throttle_pct"` // 0-100, production dial
}

// UpgradeKind distinguishes the two queueable upgrade classes.
type UpgradeKind string

const (
	UpgradeBuilding UpgradeKind = "building"
	UpgradeResearch UpgradeKind = "research"
)

// MaxQueueLength is the per-planet upgrade queue bound: one running item
// plus one pending.
const MaxQueueLength = 2

// UpgradeItem is one queued building or research upgrade. Timestamps are
// unix milliseconds; both stay zero until the item reaches the queue head.
type UpgradeItem struct {
	TargetID    string      `json:"target_id"`
	Kind        UpgradeKind `json:"kind"`
	TargetLevel int         `json:"target_level"`
	StartTime   int64       `json:"start_time"`
	EndTime     int64       `json:"end_time"`
	Duration    int         `json:"duration"` // nominal seconds
}

// Planet is one player-owned world (or moon). Mutated every tick and by
// player commands; destroyed only with the whole account.
type Planet struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Coord       galaxy.Coord     `json:"coord"`
	Moon        bool             `json:"moon"`
	Temperature game.Temperature `json:"temperature"`

	FieldsUsed int `json:"fields_used"`
	FieldsMax  int `json:"fields_max"`

	Resources ResourceBag `json:"resources"`

	Buildings map[string]*BuildingState `json:"buildings"`
	Fleet     map[string]int            `json:"fleet"`
	Defense   map[string]int            `json:"defense"`

	Queue []UpgradeItem `json:"queue"`
}

// BuildingLevel returns the level of a structure, zero when never built.
func (p *Planet) BuildingLevel(id string) int {
	if b, ok := p.Buildings[id]; ok {
		return b.Level
	}
	return 0
}

// Throttle returns the production dial for a structure. Structures the
// planet has never touched run at full output; an explicit 0 means shut off.
func (p *Planet) Throttle(id string) int {
	if b, ok := p.Buildings[id]; ok {
		return b.ThrottlePct
	}
	return 100
}

// buildingState returns the dynamic state for id, creating it at full
// throttle on first touch.
func (p *Planet) buildingState(id string) *BuildingState {
	if p.Buildings == nil {
		p.Buildings = make(map[string]*BuildingState)
	}
	b, ok := p.Buildings[id]
	if !ok {
		b = &BuildingState{ThrottlePct: 100}
		p.Buildings[id] = b
	}
	return b
}

// StorageCaps computes the current storage ceilings from storage levels.
func (p *Planet) StorageCaps(capacity func(level int) int) Capacities {
	return Capacities{
		Metal:     capacity(p.BuildingLevel(game.BuildingMetalStorage)),
		Crystal:   capacity(p.BuildingLevel(game.BuildingCrystalStorage)),
		Deuterium: capacity(p.BuildingLevel(game.BuildingDeutTank)),
	}
}

// MissionKind identifies what happens when a fleet arrives.
type MissionKind string

const (
	MissionAttack     MissionKind = "attack"
	MissionTransport  MissionKind = "transport"
	MissionExpedition MissionKind = "expedition"
	MissionSpy        MissionKind = "spy"
	MissionRecycle    MissionKind = "recycle"
	MissionColonize   MissionKind = "colonize"
	MissionReturn     MissionKind = "return"
)

// Mission is one in-flight fleet movement. Travel time and fuel are fixed
// at dispatch; a mission resolves exactly once at or after ArrivalTime.
type Mission struct {
	ID          string         `json:"id"`
	Kind        MissionKind    `json:"kind"`
	Fleet       map[string]int `json:"fleet"`
	Source      galaxy.Coord   `json:"source"`
	Target      galaxy.Coord   `json:"target"`
	DepartTime  int64          `json:"depart_time"`  // unix ms
	ArrivalTime int64          `json:"arrival_time"` // unix ms
	Payload     Payload        `json:"payload"`
}

// Report is the immutable record of a resolved mission. Only the read flag
// ever changes after creation.
type Report struct {
	ID     string          `json:"id"`
	Time   int64           `json:"time"`
	Kind   MissionKind     `json:"kind"`
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	Read   bool            `json:"read"`
	Loot   *Payload        `json:"loot,omitempty"`
	Combat *combat.Outcome `json:"combat,omitempty"`
}

// Player is the full per-player aggregate: the unit of persistence and the
// unit of simulation. Distinct players never share mutable state inside
// the core.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Planets         []*Planet `json:"planets"`
	CurrentPlanetID string    `json:"current_planet_id"`

	Research  map[string]int  `json:"research"`
	Officers  map[string]bool `json:"officers"`
	Talents   map[string]int  `json:"talents"`
	Inventory []string        `json:"inventory"` // artifact ids

	Missions []*Mission `json:"missions"`
	Reports  []*Report  `json:"reports"`

	CommanderXP int  `json:"commander_xp"`
	DarkMatter  int  `json:"dark_matter"`
	Vacation    bool `json:"vacation"`

	// planetIndex gives constant-time planet lookup; rebuilt after load
	// and after colonization instead of scanning the slice every tick.
	planetIndex map[string]*Planet
}

// ReindexPlanets rebuilds the id lookup. Call after deserializing or after
// adding a planet.
func (p *Player) ReindexPlanets() {
	p.planetIndex = make(map[string]*Planet, len(p.Planets))
	for _, pl := range p.Planets {
		p.planetIndex[pl.ID] = pl
	}
}

// Planet returns the planet with the given id, or nil.
func (p *Player) Planet(id string) *Planet {
	if p.planetIndex == nil {
		p.ReindexPlanets()
	}
	return p.planetIndex[id]
}

// PlanetAt returns the player's planet at the given coordinates, or nil.
func (p *Player) PlanetAt(c galaxy.Coord) *Planet {
	for _, pl := range p.Planets {
		if pl.Coord == c && !pl.Moon {
			return pl
		}
	}
	return nil
}

// AddPlanet appends a planet and keeps the index current.
func (p *Player) AddPlanet(pl *Planet) {
	p.Planets = append(p.Planets, pl)
	if p.planetIndex == nil {
		p.ReindexPlanets()
		return
	}
	p.planetIndex[pl.ID] = pl
}

// NewPlayer creates a fresh account with a single homeworld.
func NewPlayer(name string, home galaxy.Coord) *Player {
	planet := NewPlanet(home, "Homeworld")
	p := &Player{
		ID:              newID(),
		Name:            name,
		CurrentPlanetID: planet.ID,
		Research:        make(map[string]int),
		Officers:        make(map[string]bool),
		Talents:         make(map[string]int),
	}
	p.AddPlanet(planet)
	return p
}

// ResearchLevel returns an account technology level, zero when unknown.
func (p *Player) ResearchLevel(id string) int {
	return p.Research[id]
}

// TalentLevel returns an account talent level, zero when untrained.
func (p *Player) TalentLevel(id string) int {
	return p.Talents[id]
}
