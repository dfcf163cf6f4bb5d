package domain

// IndexMapping maps convention-Y ROI names to their index codes (list B).
// Keys are unique by construction; a later entry for the same name replaces the earlier one.
type IndexMapping map[string]string

// Lookup returns the id registered for name.
func (m IndexMapping) Lookup(name string) (string, bool) {
	id, ok := m[name]
	return id, ok
}

