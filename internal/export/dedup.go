package export

import (
	"go.uber.org/zap"
)

// Deduplicator tracks identifiers already accepted during a pull so that
// pages returning overlapping slices never double-count an entity.
type Deduplicator struct {
	keys    []string
	seen    map[string]struct{}
	log     *zap.Logger
	skipped int
}

// NewDeduplicator builds a Deduplicator resolving identifiers from the
// given candidate field names, in priority order.
func NewDeduplicator(log *zap.Logger, candidateKeys ...string) *Deduplicator {
	return &Deduplicator{
		keys: candidateKeys,
		seen: make(map[string]struct{}),
		log:  log,
	}
}

// Accept returns true and registers the entity's identifier on first
// sight, false on a repeat. Entities without any recognized identifier
// are always rejected; accumulating them would poison the key space.
func (d *Deduplicator) Accept(e Entity) bool {
	id := e.Identifier(d.keys...)
	if id == "" {
		d.skipped++
		d.log.Warn("skipped, no identifier", zap.Strings("candidates", d.keys))
		return false
	}
	if _, ok := d.seen[id]; ok {
		return false
	}
	d.seen[id] = struct{}{}
	return true
}

// Len reports how many distinct identifiers have been accepted.
func (d *Deduplicator) Len() int {
	return len(d.seen)
}

// Skipped reports how many entities were rejected for lacking an
// identifier.
func (d *Deduplicator) Skipped() int {
	return d.skipped
}
