// Package galaxy provides the shared-space model: coordinates, travel
// distance, planet climate generation and the debris registry contract that
// connects independent player simulations.
package galaxy

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord addresses one planet slot as galaxy:system:position.
type Coord struct {
	Galaxy   int `json:"galaxy"`
	System   int `json:"system"`
	Position int `json:"position"`
}

// String renders the canonical g:s:p form used as a registry key.
func (c Coord) String() string {
	return fmt.Sprintf("%d:%d:%d", c.Galaxy, c.System, c.Position)
}

// ParseCoord parses a g:s:p key.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Coord{}, fmt.Errorf("parse coord %q: want g:s:p", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Coord{}, fmt.Errorf("parse coord %q: %w", s, err)
		}
		nums[i] = n
	}
	return Coord{Galaxy: nums[0], System: nums[1], Position: nums[2]}, nil
}

// SystemsPerGalaxyHop is the distance equivalent of crossing one galaxy
// boundary.
const SystemsPerGalaxyHop = 20

// Distance returns the travel distance between two coordinates in abstract
// units: one system equals one unit, plus a fixed 5-unit launch offset.
func Distance(a, b Coord) int {
	d := abs(a.System-b.System) + SystemsPerGalaxyHop*abs(a.Galaxy-b.Galaxy) + 5
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
