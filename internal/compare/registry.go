package compare

import "sort"

// Registry holds the comparison strategies in priority order. It is built
// once and read-only afterwards, so concurrent comparison calls can resolve
// strategies without synchronization.
type Registry struct {
	ordered []Strategy
	byMode  map[Mode]Strategy
}

// defaultRegistry is the process-wide strategy table. Populated at init and
// never mutated; AUTO is a resolution request, not an entry.
var defaultRegistry = NewRegistry(builtinStrategies())

// NewRegistry builds a registry from the given strategies. Registering the
// same mode twice keeps the last entry, matching initialization-order
// semantics.
func NewRegistry(strategies []Strategy) *Registry {
	byMode := make(map[Mode]Strategy, len(strategies))
	for _, s := range strategies {
		byMode[s.Mode] = s
	}
	ordered := make([]Strategy, 0, len(byMode))
	for _, s := range byMode {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].Mode < ordered[j].Mode
	})
	return &Registry{ordered: ordered, byMode: byMode}
}

// DefaultRegistry returns the built-in strategy table.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ForMode resolves a requested mode into the ordered strategy subset that
// should run. AUTO (or blank) selects every strategy participating in
// auto-detection; an explicit mode selects exactly that strategy. An unknown
// mode yields an empty list, which callers must report as "no comparator
// available" rather than a silent pass.
func (r *Registry) ForMode(mode Mode) []Strategy {
	if mode == "" || mode == ModeAuto {
		auto := make([]Strategy, 0, len(r.ordered))
		for _, s := range r.ordered {
			if s.IncludeInAuto {
				auto = append(auto, s)
			}
		}
		return auto
	}
	if s, ok := r.byMode[mode]; ok {
		return []Strategy{s}
	}
	return nil
}

// Strategy looks up a single registered strategy by mode.
func (r *Registry) Strategy(mode Mode) (Strategy, bool) {
	s, ok := r.byMode[mode]
	return s, ok
}

// ListModes returns every registered mode in priority order.
func (r *Registry) ListModes() []Mode {
	modes := make([]Mode, len(r.ordered))
	for i, s := range r.ordered {
		modes[i] = s.Mode
	}
	return modes
}
