package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
)

func TestTableLookupHolesAndBounds(t *testing.T) {
	table := spell.NewTable(10)
	table.Set(&spell.Definition{ID: 3, Name: "only spell"})

	require.NotNil(t, table.Lookup(3))
	assert.Equal(t, "only spell", table.Lookup(3).Name)

	// Holes and out-of-range ids read as absent, not as errors
	assert.Nil(t, table.Lookup(2))
	assert.Nil(t, table.Lookup(9))
	assert.Nil(t, table.Lookup(10))
	assert.Nil(t, table.Lookup(9999))
}

func TestTableSetDropsOutOfRange(t *testing.T) {
	table := spell.NewTable(5)
	table.Set(&spell.Definition{ID: 7})

	assert.Nil(t, table.Lookup(7))
	assert.Equal(t, 0, table.Len())
}

func TestNewTableFromDefinitions(t *testing.T) {
	table := spell.NewTableFromDefinitions([]*spell.Definition{
		{ID: 2},
		{ID: 40},
		nil,
	})

	assert.Equal(t, uint32(41), table.MaxID())
	assert.Equal(t, 2, table.Len())
	assert.NotNil(t, table.Lookup(2))
	assert.NotNil(t, table.Lookup(40))
}

func TestRangeTableLookup(t *testing.T) {
	table := spell.NewRangeTableFromDefinitions([]*spell.RangeDefinition{
		{Index: 4, MinRange: 0, MaxRange: 30},
	})

	require.NotNil(t, table.Lookup(4))
	assert.Equal(t, 30.0, table.Lookup(4).MaxRange)
	assert.Nil(t, table.Lookup(5))
}

func TestSchoolMaskIntersects(t *testing.T) {
	mask := spell.SchoolMaskFire | spell.SchoolMaskFrost

	assert.True(t, mask.Intersects(spell.SchoolMaskFire))
	assert.True(t, mask.Intersects(spell.SchoolMaskFrost|spell.SchoolMaskHoly))
	assert.False(t, mask.Intersects(spell.SchoolMaskShadow))
	assert.False(t, mask.Intersects(0))
}
