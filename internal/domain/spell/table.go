package spell

// Table is the static spell table, indexed by spell id. Id ranges are
// sparse in real content data, so holes are expected and Lookup simply
// returns nil for them.
type Table struct {
	entries []*Definition
}

// NewTable creates a table sized for ids in [0, maxID).
func NewTable(maxID uint32) *Table {
	return &Table{
		entries: make([]*Definition, maxID),
	}
}

// NewTableFromDefinitions builds a table just large enough to hold the
// given definitions. Duplicate ids keep the last definition seen.
func NewTableFromDefinitions(defs []*Definition) *Table {
	var maxID uint32
	for _, def := range defs {
		if def != nil && def.ID >= maxID {
			maxID = def.ID + 1
		}
	}

	table := NewTable(maxID)
	for _, def := range defs {
		table.Set(def)
	}

	return table
}

// Set stores a definition under its own id. Definitions outside the
// table's id range are silently dropped.
func (t *Table) Set(def *Definition) {
	if def == nil || def.ID >= uint32(len(t.entries)) {
		return
	}
	t.entries[def.ID] = def
}

// Lookup returns the definition for id, or nil when the id is a hole or
// out of range.
func (t *Table) Lookup(id uint32) *Definition {
	if id >= uint32(len(t.entries)) {
		return nil
	}
	return t.entries[id]
}

// MaxID returns the exclusive upper bound of the table's id space.
func (t *Table) MaxID() uint32 {
	return uint32(len(t.entries))
}

// Len returns the number of populated entries.
func (t *Table) Len() int {
	count := 0
	for _, def := range t.entries {
		if def != nil {
			count++
		}
	}
	return count
}
