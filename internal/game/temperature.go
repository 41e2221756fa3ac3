package game

// Temperature is a planet's surface temperature range in degrees Celsius.
// The average drives solar output; the maximum drives fuel synthesis and
// satellite yield.
type Temperature struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Avg returns the mean of the range.
func (t Temperature) Avg() float64 {
	return (float64(t.Min) + float64(t.Max)) / 2
}
