package engine

import (
	"github.com/avray/starforge/internal/game"
)

// Experience granted to the commander when an upgrade completes.
const (
	xpPerBuildingLevel = 10
	xpPerResearchLevel = 20
)

// AdvanceQueue progresses a planet's upgrade queue to the given time.
// Calling it with a now before the head's end time changes nothing, so it
// is safe to invoke every tick.
//
// When the head completes: the building or research level is applied, the
// commander gains experience, and the next item (if any) is stamped with
// start/end times and becomes the new head.
func AdvanceQueue(owner *Player, p *Planet, now int64) {
	for len(p.Queue) > 0 {
		head := &p.Queue[0]

		// Defensive path: a head enqueued into an empty queue gets its
		// timestamps at enqueue time, but stamp here if they are missing.
		if head.StartTime == 0 {
			head.StartTime = now
			head.EndTime = now + int64(head.Duration)*1000
		}

		if now < head.EndTime {
			return
		}

		completeUpgrade(owner, p, *head)

		p.Queue = p.Queue[1:]
		if len(p.Queue) > 0 {
			// The promoted item starts counting from now, not from the
			// head's scheduled end: time spent waiting is not refunded.
			next := &p.Queue[0]
			next.StartTime = now
			next.EndTime = now + int64(next.Duration)*1000
		}
	}
}

func completeUpgrade(owner *Player, p *Planet, item UpgradeItem) {
	switch item.Kind {
	case UpgradeBuilding:
		b := p.buildingState(item.TargetID)
		b.Level = item.TargetLevel
		p.FieldsUsed++
		owner.CommanderXP += item.TargetLevel * xpPerBuildingLevel
	case UpgradeResearch:
		if owner.Research == nil {
			owner.Research = make(map[string]int)
		}
		owner.Research[item.TargetID] = item.TargetLevel
		owner.CommanderXP += item.TargetLevel * xpPerResearchLevel
	}
}

// queuedLevel returns the highest level of the entity already sitting in
// the queue, so a second enqueue of the same entity prices the level after
// the queued one.
func queuedLevel(p *Planet, id string) (int, bool) {
	level := 0
	found := false
	for i := range p.Queue {
		if p.Queue[i].TargetID == id && p.Queue[i].TargetLevel > level {
			level = p.Queue[i].TargetLevel
			found = true
		}
	}
	return level, found
}

// queuedBuildings counts building items currently queued, for field
// capacity checks.
func queuedBuildings(p *Planet) int {
	n := 0
	for i := range p.Queue {
		if p.Queue[i].Kind == UpgradeBuilding {
			n++
		}
	}
	return n
}

// moonAccepts reports whether a structure may be placed on a moon.
func moonAccepts(def *game.BuildingDef) bool {
	return def.MoonOnly || def.AllowedOnMoon
}
