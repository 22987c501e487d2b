package spelldata

import (
	"context"
	"sync"

	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	aierr "github.com/KirkDiggler/scripted-ai/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the spell data
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu     sync.RWMutex
	spells map[uint32]*spell.Definition
	ranges map[uint32]*spell.RangeDefinition
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		spells: make(map[uint32]*spell.Definition),
		ranges: make(map[uint32]*spell.RangeDefinition),
	}
}

// SaveSpell stores a spell definition.
func (r *InMemoryRepository) SaveSpell(ctx context.Context, def *spell.Definition) error {
	if def == nil {
		return aierr.InvalidArgument("spell definition cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy to avoid external modifications
	defCopy := *def
	r.spells[def.ID] = &defCopy

	return nil
}

// SaveRange stores a range definition.
func (r *InMemoryRepository) SaveRange(ctx context.Context, def *spell.RangeDefinition) error {
	if def == nil {
		return aierr.InvalidArgument("range definition cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	defCopy := *def
	r.ranges[def.Index] = &defCopy

	return nil
}

// GetSpellTable builds a table from the stored definitions.
func (r *InMemoryRepository) GetSpellTable(ctx context.Context) (*spell.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*spell.Definition, 0, len(r.spells))
	for _, def := range r.spells {
		defCopy := *def
		defs = append(defs, &defCopy)
	}

	return spell.NewTableFromDefinitions(defs), nil
}

// GetRangeTable builds a range table from the stored definitions.
func (r *InMemoryRepository) GetRangeTable(ctx context.Context) (*spell.RangeTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*spell.RangeDefinition, 0, len(r.ranges))
	for _, def := range r.ranges {
		defCopy := *def
		defs = append(defs, &defCopy)
	}

	return spell.NewRangeTableFromDefinitions(defs), nil
}
