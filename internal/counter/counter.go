// Package counter provides a frequency counter that remembers the order in
// which keys were first seen.
//
// Ties between equally frequent keys always resolve to the key that was
// encountered first, so results never depend on map iteration order.
package counter

// Counter counts occurrences of comparable keys.
// The zero value is not usable; create counters with New.
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
	total  int
}

// New creates an empty counter.
func New[K comparable]() *Counter[K] {
	return &Counter[K]{
		counts: make(map[K]int),
	}
}

// Add increments the frequency of key by one.
func (c *Counter[K]) Add(key K) {
	c.AddN(key, 1)
}

// AddN increments the frequency of key by n. Non-positive n is ignored.
func (c *Counter[K]) AddN(key K, n int) {
	if n <= 0 {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
	c.total += n
}

// Merge adds every count of other into c. Keys new to c are appended in
// other's first-seen order, which keeps merging associative.
func (c *Counter[K]) Merge(other *Counter[K]) {
	if other == nil {
		return
	}
	for _, key := range other.order {
		c.AddN(key, other.counts[key])
	}
}

// Frequency returns how often key was counted.
func (c *Counter[K]) Frequency(key K) int {
	if c == nil {
		return 0
	}
	return c.counts[key]
}

// MostCommon returns the most frequent key and its frequency.
// ok is false when the counter is empty.
func (c *Counter[K]) MostCommon() (key K, freq int, ok bool) {
	if c == nil {
		return key, 0, false
	}
	for _, k := range c.order {
		if n := c.counts[k]; n > freq {
			key, freq, ok = k, n, true
		}
	}
	return key, freq, ok
}

// Len returns the number of distinct keys.
func (c *Counter[K]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Total returns the sum of all frequencies.
func (c *Counter[K]) Total() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Keys returns the distinct keys in first-seen order.
func (c *Counter[K]) Keys() []K {
	if c == nil {
		return nil
	}
	keys := make([]K, len(c.order))
	copy(keys, c.order)
	return keys
}

// Clone returns an independent copy of the counter.
func (c *Counter[K]) Clone() *Counter[K] {
	clone := New[K]()
	clone.Merge(c)
	return clone
}

// Equal reports whether both counters hold the same keys, in the same
// first-seen order, with the same frequencies.
func (c *Counter[K]) Equal(other *Counter[K]) bool {
	if c.Len() != other.Len() || c.Total() != other.Total() {
		return false
	}
	for i, k := range c.Keys() {
		if other.order[i] != k || other.counts[k] != c.counts[k] {
			return false
		}
	}
	return true
}
