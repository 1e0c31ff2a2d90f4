package mcpi

// Counts holds the running inside/outside tallies.
// Both counters only ever increase.
type Counts struct {
	Inside  uint64
	Outside uint64
}

// Record adds one classified sample.
func (c *Counts) Record(inside bool) {
	if inside {
		c.Inside++
	} else {
		c.Outside++
	}
}

// Total returns the number of recorded samples.
func (c Counts) Total() uint64 {
	return c.Inside + c.Outside
}

// Estimate returns 4 * Inside / Total.
// ok is false before the first sample, when the ratio is undefined.
func (c Counts) Estimate() (pi float64, ok bool) {
	total := c.Total()
	if total == 0 {
		return 0, false
	}
	return 4 * float64(c.Inside) / float64(total), true
}
