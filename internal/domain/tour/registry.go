package tour

import "sort"

type entry struct {
	step Step
	seq  uint64
}

// Registry holds the currently mounted steps of a tour session. Traversal
// order is always derived from each step's Order, with ties broken by
// registration sequence. The registry is owned by the host's UI thread and
// is not safe for concurrent use.
type Registry struct {
	steps    map[string]entry
	nextSeq  uint64
	detached bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{steps: make(map[string]entry)}
}

// Register adds or replaces a step by name. Replacing keeps the step's
// first registration sequence so its tie-break position is stable.
func (r *Registry) Register(step Step) {
	if r == nil || r.detached || step.Name == "" {
		return
	}
	if existing, ok := r.steps[step.Name]; ok {
		r.steps[step.Name] = entry{step: step, seq: existing.seq}
		return
	}
	r.nextSeq++
	r.steps[step.Name] = entry{step: step, seq: r.nextSeq}
}

// Unregister removes a step. It is a no-op once the registry is detached so
// unmount signals arriving after teardown are harmless.
func (r *Registry) Unregister(name string) {
	if r == nil || r.detached {
		return
	}
	delete(r.steps, name)
}

// Detach tears the registry down. Later Register and Unregister calls are ignored.
func (r *Registry) Detach() {
	if r == nil {
		return
	}
	r.detached = true
}

// Detached reports whether Detach has been called.
func (r *Registry) Detached() bool {
	return r != nil && r.detached
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.steps)
}

// Contains reports whether a step with the given name is registered.
func (r *Registry) Contains(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.steps[name]
	return ok
}

// ByName returns the registered step with the given name.
func (r *Registry) ByName(name string) (Step, bool) {
	if r == nil {
		return Step{}, false
	}
	e, ok := r.steps[name]
	return e.step, ok
}

// Steps returns the registered steps in traversal order.
func (r *Registry) Steps() []Step {
	entries := r.sorted()
	steps := make([]Step, len(entries))
	for i, e := range entries {
		steps[i] = e.step
	}
	return steps
}

// First returns the step with the lowest order.
func (r *Registry) First() (Step, bool) {
	var best *entry
	for _, e := range r.entries() {
		e := e
		if best == nil || less(e, *best) {
			best = &e
		}
	}
	if best == nil {
		return Step{}, false
	}
	return best.step, true
}

// Last returns the step with the highest order.
func (r *Registry) Last() (Step, bool) {
	var best *entry
	for _, e := range r.entries() {
		e := e
		if best == nil || less(*best, e) {
			best = &e
		}
	}
	if best == nil {
		return Step{}, false
	}
	return best.step, true
}

// Next returns the step that follows step in traversal order.
func (r *Registry) Next(step Step) (Step, bool) {
	ref, registered := r.reference(step)
	var best *entry
	for _, e := range r.entries() {
		e := e
		if !after(e, ref, registered) {
			continue
		}
		if best == nil || less(e, *best) {
			best = &e
		}
	}
	if best == nil {
		return Step{}, false
	}
	return best.step, true
}

// Prev returns the step that precedes step in traversal order.
func (r *Registry) Prev(step Step) (Step, bool) {
	ref, registered := r.reference(step)
	var best *entry
	for _, e := range r.entries() {
		e := e
		if !before(e, ref, registered) {
			continue
		}
		if best == nil || less(*best, e) {
			best = &e
		}
	}
	if best == nil {
		return Step{}, false
	}
	return best.step, true
}

// Position returns the 1-based traversal position of step, or 0 when it is
// not registered.
func (r *Registry) Position(step Step) int {
	for i, e := range r.sorted() {
		if e.step.Name == step.Name {
			return i + 1
		}
	}
	return 0
}

func (r *Registry) entries() map[string]entry {
	if r == nil {
		return nil
	}
	return r.steps
}

func (r *Registry) sorted() []entry {
	entries := make([]entry, 0, r.Len())
	for _, e := range r.entries() {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	return entries
}

// reference resolves the traversal key of step. A step that is not
// registered under its name only carries its Order.
func (r *Registry) reference(step Step) (entry, bool) {
	if e, ok := r.entries()[step.Name]; ok {
		return e, true
	}
	return entry{step: step}, false
}

func less(a, b entry) bool {
	if a.step.Order != b.step.Order {
		return a.step.Order < b.step.Order
	}
	return a.seq < b.seq
}

func after(e, ref entry, registered bool) bool {
	if !registered {
		return e.step.Order > ref.step.Order
	}
	return less(ref, e)
}

func before(e, ref entry, registered bool) bool {
	if !registered {
		return e.step.Order < ref.step.Order
	}
	return less(e, ref)
}
