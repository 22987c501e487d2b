package spell

// RangeDefinition is a static range-table record: the effective distance
// band a spell can be cast at.
type RangeDefinition struct {
	Index    uint32  `json:"index" yaml:"index"`
	MinRange float64 `json:"min_range" yaml:"min_range"`
	MaxRange float64 `json:"max_range" yaml:"max_range"`
}

// RangeTable is the static range table, indexed by range index. Like the
// spell table it may be sparse.
type RangeTable struct {
	entries map[uint32]*RangeDefinition
}

// NewRangeTable creates an empty range table.
func NewRangeTable() *RangeTable {
	return &RangeTable{
		entries: make(map[uint32]*RangeDefinition),
	}
}

// NewRangeTableFromDefinitions builds a range table from the given records.
func NewRangeTableFromDefinitions(defs []*RangeDefinition) *RangeTable {
	table := NewRangeTable()
	for _, def := range defs {
		table.Set(def)
	}
	return table
}

// Set stores a range definition under its own index.
func (t *RangeTable) Set(def *RangeDefinition) {
	if def == nil {
		return
	}
	t.entries[def.Index] = def
}

// Lookup returns the range definition for index, or nil when missing.
// A missing range record makes the referencing spell uncastable.
func (t *RangeTable) Lookup(index uint32) *RangeDefinition {
	return t.entries[index]
}

// Len returns the number of populated entries.
func (t *RangeTable) Len() int {
	return len(t.entries)
}

// Definitions returns every populated range record, in no particular
// order.
func (t *RangeTable) Definitions() []*RangeDefinition {
	defs := make([]*RangeDefinition, 0, len(t.entries))
	for _, def := range t.entries {
		defs = append(defs, def)
	}
	return defs
}
