package benchmark

// Counters records PUT/GET attempts and successes. Each worker owns its own
// Counters and mutates it without synchronization; the driver merges all
// worker sets after the join, so totals are sum-preserving by construction.
type Counters struct {
	PutTotal   int64
	PutSuccess int64
	GetTotal   int64
	GetSuccess int64
}

// Merge adds the other counter set into c.
func (c *Counters) Merge(other Counters) {
	c.PutTotal += other.PutTotal
	c.PutSuccess += other.PutSuccess
	c.GetTotal += other.GetTotal
	c.GetSuccess += other.GetSuccess
}
