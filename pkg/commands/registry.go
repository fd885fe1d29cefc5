package commands

import "sort"

// Registry maps invocation keywords to entries.
// It is built once at startup and only read afterwards.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry създава празен registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Set регистрира entry; по-късно име заменя по-ранното
func (r *Registry) Set(e Entry) {
	r.entries[e.Name] = e
}

// Lookup намира entry по име
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names връща имената на всички команди, сортирани
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.entries)
}
