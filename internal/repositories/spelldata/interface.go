package spelldata

//go:generate mockgen -destination=mock/mock.go -package=mockspelldata -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
)

// Repository provides the static content tables the AI layer consumes:
// the spell table and the range table. Implementations are expected to
// be read-mostly; the Save methods exist for seeding tools and tests.
type Repository interface {
	// GetSpellTable loads the full static spell table.
	GetSpellTable(ctx context.Context) (*spell.Table, error)

	// GetRangeTable loads the full static range table.
	GetRangeTable(ctx context.Context) (*spell.RangeTable, error)

	// SaveSpell stores a spell definition.
	SaveSpell(ctx context.Context, def *spell.Definition) error

	// SaveRange stores a range definition.
	SaveRange(ctx context.Context, def *spell.RangeDefinition) error
}
