package form

// NotifyFunc receives the merged step data whenever a patch changed it.
type NotifyFunc func(Record)

// StateStore is the per-step shadow of the controller's aggregate record.
// Steps edit through Patch; the parent pushes refreshed snapshots through
// Reconcile when the user revisits a step. Both paths are gated on shallow
// equality so a recomputed-but-identical snapshot never produces a
// notification, which is what breaks the parent/child update feedback loop.
type StateStore struct {
	current Record
	notify  NotifyFunc
}

// NewStateStore seeds the store with a snapshot of the aggregate data.
func NewStateStore(initial Record, notify NotifyFunc) *StateStore {
	return &StateStore{current: Clone(initial), notify: notify}
}

// Current returns the held snapshot. Callers must not mutate it.
func (s *StateStore) Current() Record {
	return s.current
}

// Reconcile replaces the held snapshot when the upstream data actually
// changed. It never notifies; the parent already owns the new snapshot.
func (s *StateStore) Reconcile(snapshot Record) {
	if ShallowEqual(s.current, snapshot) {
		return
	}
	s.current = Clone(snapshot)
}

// Patch merges partial into the held snapshot. The notify callback fires
// exactly once per effective change and never for a no-op patch.
func (s *StateStore) Patch(partial Record) {
	next := Merge(s.current, partial)
	if ShallowEqual(s.current, next) {
		return
	}
	s.current = next
	if s.notify != nil {
		s.notify(next)
	}
}
