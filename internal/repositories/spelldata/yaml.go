package spelldata

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	aierr "github.com/KirkDiggler/scripted-ai/internal/errors"
)

// fileData is the on-disk layout of a content file: both tables in one
// yaml document.
type fileData struct {
	Spells []*spell.Definition      `yaml:"spells"`
	Ranges []*spell.RangeDefinition `yaml:"ranges"`
}

// yamlRepo implements Repository over a yaml content file. It is
// read-only; the Save methods report unimplemented.
type yamlRepo struct {
	path string
}

// NewYAMLFile creates a repository reading both tables from one yaml
// file. The file is re-read on every Get, which is fine for a
// load-once-at-startup consumer.
func NewYAMLFile(path string) Repository {
	if path == "" {
		panic("content file path is required")
	}

	return &yamlRepo{path: path}
}

// GetSpellTable loads the spell table from the content file.
func (r *yamlRepo) GetSpellTable(ctx context.Context) (*spell.Table, error) {
	data, err := r.load()
	if err != nil {
		return nil, err
	}
	return spell.NewTableFromDefinitions(data.Spells), nil
}

// GetRangeTable loads the range table from the content file.
func (r *yamlRepo) GetRangeTable(ctx context.Context) (*spell.RangeTable, error) {
	data, err := r.load()
	if err != nil {
		return nil, err
	}
	return spell.NewRangeTableFromDefinitions(data.Ranges), nil
}

// SaveSpell is not supported on a file-backed repository.
func (r *yamlRepo) SaveSpell(ctx context.Context, def *spell.Definition) error {
	return aierr.Unimplemented("yaml content files are read-only")
}

// SaveRange is not supported on a file-backed repository.
func (r *yamlRepo) SaveRange(ctx context.Context, def *spell.RangeDefinition) error {
	return aierr.Unimplemented("yaml content files are read-only")
}

func (r *yamlRepo) load() (*fileData, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, aierr.Wrapf(err, "failed to read content file %s", r.path)
	}

	var data fileData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, aierr.Wrapf(err, "failed to parse content file %s", r.path)
	}

	return &data, nil
}
