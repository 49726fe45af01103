package autumn

// Effect is one reversible mutation performed during parsing. The
// mutation itself has already been performed by the time its Effect
// is appended to the log; Inverse undoes it. Every mutation a parser performs beyond moving
// the cursor (value-stack push/pop, user-defined state updates) must
// either pass through the log or be implicitly reversible by rolling
// back pos (spec.md §3).
type Effect struct {
	Inverse func()
}

// SideEffectLog is the ordered journal of reversible mutations applied
// during one Parse. Committing is a no-op; rolling back replays the
// inverses in reverse order (spec.md §3, §9). Rollback is O(k) in the
// number of effects since the checkpoint, never O(total state size).
type SideEffectLog struct {
	effects []Effect
}

func newSideEffectLog() *SideEffectLog {
	return &SideEffectLog{effects: make([]Effect, 0, 32)}
}

// Size returns the current log length, used as a checkpoint.
func (l *SideEffectLog) Size() int { return len(l.effects) }

// Apply appends an already-executed effect with its inverse closure.
func (l *SideEffectLog) Apply(inverse func()) {
	l.effects = append(l.effects, Effect{Inverse: inverse})
}

// Rollback replays inverses in reverse order down to size `to`, then
// truncates the log. Calling Rollback with the log's current size is
// a no-op, matching the "commit" case of the transactional protocol.
func (l *SideEffectLog) Rollback(to int) {
	for i := len(l.effects) - 1; i >= to; i-- {
		l.effects[i].Inverse()
	}
	l.effects = l.effects[:to]
}
