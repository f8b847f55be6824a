package cxx

type flagEntry struct {
	values   []string
	isToggle bool
}

// Flags accumulates compiler flags while preserving insertion order, so the
// rendered command lines stay deterministic.
type Flags struct {
	order   []string
	entries map[string]*flagEntry
}

// NewFlags returns an empty flag set.
func NewFlags() *Flags {
	return &Flags{entries: map[string]*flagEntry{}}
}

// Set appends values for the given flag. Calls with no values are ignored.
func (f *Flags) Set(flag string, values ...string) {
	if len(values) == 0 {
		return
	}

	e := f.entry(flag)
	e.values = append(e.values, values...)
	e.isToggle = false
}

// Toggle marks a flag that takes no value.
func (f *Flags) Toggle(flag string) {
	e := f.entry(flag)
	e.values = nil
	e.isToggle = true
}

// Merge copies the flags from other into f, overriding same-named flags
// already present and appending the rest in other's order.
func (f *Flags) Merge(other *Flags) {
	if other == nil {
		return
	}

	other.Range(func(flag string, values []string, isToggle bool) {
		e := f.entry(flag)
		e.values = append([]string(nil), values...)
		e.isToggle = isToggle
	})
}

// Range iterates the flags in insertion order.
func (f *Flags) Range(fn func(flag string, values []string, isToggle bool)) {
	for _, flag := range f.order {
		e := f.entries[flag]
		fn(flag, e.values, e.isToggle)
	}
}

func (f *Flags) entry(flag string) *flagEntry {
	e, ok := f.entries[flag]
	if !ok {
		e = &flagEntry{}
		f.entries[flag] = e
		f.order = append(f.order, flag)
	}
	return e
}
