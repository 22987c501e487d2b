package spelldata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	aierr "github.com/KirkDiggler/scripted-ai/internal/errors"
)

const testContent = `
spells:
  - id: 116
    name: Frostbolt
    school_mask: 16
    power_cost: 25
    power_type: 0
    range_index: 4
    effects:
      - kind: 2
        target: 6
  - id: 139
    name: Renew
    school_mask: 2
    power_cost: 30
    range_index: 4
    effects:
      - kind: 6
        target: 21
        aura: 8
ranges:
  - index: 4
    min_range: 0
    max_range: 30
`

func writeTestContent(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spells.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestYAMLGetSpellTable(t *testing.T) {
	repo := NewYAMLFile(writeTestContent(t, testContent))

	table, err := repo.GetSpellTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())

	frostbolt := table.Lookup(116)
	require.NotNil(t, frostbolt)
	assert.Equal(t, "Frostbolt", frostbolt.Name)
	assert.Equal(t, spell.SchoolMaskFrost, frostbolt.SchoolMask)
	assert.Equal(t, int32(25), frostbolt.PowerCost)
	assert.Equal(t, spell.EffectSchoolDamage, frostbolt.Effects[0].Kind)
	assert.Equal(t, spell.TargetChainDamage, frostbolt.Effects[0].Target)

	renew := table.Lookup(139)
	require.NotNil(t, renew)
	assert.Equal(t, spell.AuraPeriodicHeal, renew.Effects[0].Aura)
}

func TestYAMLGetRangeTable(t *testing.T) {
	repo := NewYAMLFile(writeTestContent(t, testContent))

	table, err := repo.GetRangeTable(context.Background())
	require.NoError(t, err)

	require.NotNil(t, table.Lookup(4))
	assert.Equal(t, 30.0, table.Lookup(4).MaxRange)
}

func TestYAMLMissingFile(t *testing.T) {
	repo := NewYAMLFile(filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := repo.GetSpellTable(context.Background())
	assert.Error(t, err)
}

func TestYAMLMalformedFile(t *testing.T) {
	repo := NewYAMLFile(writeTestContent(t, "spells: [not a map"))

	_, err := repo.GetSpellTable(context.Background())
	assert.Error(t, err)
}

func TestYAMLSaveIsUnimplemented(t *testing.T) {
	repo := NewYAMLFile(writeTestContent(t, testContent))

	err := repo.SaveSpell(context.Background(), &spell.Definition{ID: 1})
	assert.True(t, aierr.IsUnimplemented(err))

	err = repo.SaveRange(context.Background(), &spell.RangeDefinition{Index: 1})
	assert.True(t, aierr.IsUnimplemented(err))
}

// The yaml and in-memory repositories must agree on what they load for
// identical content.
func TestYAMLAndInMemoryParity(t *testing.T) {
	ctx := context.Background()

	yamlRepo := NewYAMLFile(writeTestContent(t, testContent))
	memRepo := NewInMemoryRepository()

	yamlTable, err := yamlRepo.GetSpellTable(ctx)
	require.NoError(t, err)

	for id := uint32(0); id < yamlTable.MaxID(); id++ {
		if def := yamlTable.Lookup(id); def != nil {
			require.NoError(t, memRepo.SaveSpell(ctx, def))
		}
	}

	memTable, err := memRepo.GetSpellTable(ctx)
	require.NoError(t, err)

	require.Equal(t, yamlTable.MaxID(), memTable.MaxID())
	for id := uint32(0); id < yamlTable.MaxID(); id++ {
		fromYAML := yamlTable.Lookup(id)
		fromMem := memTable.Lookup(id)
		if fromYAML == nil {
			assert.Nil(t, fromMem, "id %d", id)
			continue
		}
		require.NotNil(t, fromMem, "id %d", id)
		assert.Equal(t, *fromYAML, *fromMem, "id %d", id)
	}
}
