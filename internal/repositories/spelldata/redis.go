package spelldata

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	aierr "github.com/KirkDiggler/scripted-ai/internal/errors"
)

const (
	spellKeyPrefix = "spell:"
	spellIDSetKey  = "spells:ids"
	rangeKeyPrefix = "spellrange:"
	rangeIDSetKey  = "spellranges:ids"
)

// redisRepo implements Repository using Redis. Each definition is a JSON
// record under its own key, with a set of known ids for enumeration.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed spell data repository.
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client is required")
	}

	return &redisRepo{client: client}
}

// SaveSpell stores a spell definition.
func (r *redisRepo) SaveSpell(ctx context.Context, def *spell.Definition) error {
	if def == nil {
		return aierr.InvalidArgument("spell definition cannot be nil")
	}

	data, err := json.Marshal(def)
	if err != nil {
		return aierr.Wrapf(err, "failed to marshal spell %d", def.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, spellKey(def.ID), string(data), 0)
	pipe.SAdd(ctx, spellIDSetKey, strconv.FormatUint(uint64(def.ID), 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return aierr.Wrapf(err, "failed to store spell %d", def.ID)
	}

	return nil
}

// SaveRange stores a range definition.
func (r *redisRepo) SaveRange(ctx context.Context, def *spell.RangeDefinition) error {
	if def == nil {
		return aierr.InvalidArgument("range definition cannot be nil")
	}

	data, err := json.Marshal(def)
	if err != nil {
		return aierr.Wrapf(err, "failed to marshal range %d", def.Index)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, rangeKey(def.Index), string(data), 0)
	pipe.SAdd(ctx, rangeIDSetKey, strconv.FormatUint(uint64(def.Index), 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return aierr.Wrapf(err, "failed to store range %d", def.Index)
	}

	return nil
}

// GetSpellTable loads every stored spell definition into a table.
func (r *redisRepo) GetSpellTable(ctx context.Context) (*spell.Table, error) {
	ids, err := r.memberIDs(ctx, spellIDSetKey)
	if err != nil {
		return nil, aierr.Wrap(err, "failed to list spell ids")
	}

	defs := make([]*spell.Definition, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			data, err := r.client.Get(ctx, spellKey(id)).Result()
			if err != nil {
				return aierr.Wrapf(err, "failed to get spell %d", id)
			}

			var def spell.Definition
			if err := json.Unmarshal([]byte(data), &def); err != nil {
				return aierr.Wrapf(err, "failed to unmarshal spell %d", id)
			}

			defs[i] = &def
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return spell.NewTableFromDefinitions(defs), nil
}

// GetRangeTable loads every stored range definition into a table.
func (r *redisRepo) GetRangeTable(ctx context.Context) (*spell.RangeTable, error) {
	ids, err := r.memberIDs(ctx, rangeIDSetKey)
	if err != nil {
		return nil, aierr.Wrap(err, "failed to list range ids")
	}

	defs := make([]*spell.RangeDefinition, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			data, err := r.client.Get(ctx, rangeKey(id)).Result()
			if err != nil {
				return aierr.Wrapf(err, "failed to get range %d", id)
			}

			var def spell.RangeDefinition
			if err := json.Unmarshal([]byte(data), &def); err != nil {
				return aierr.Wrapf(err, "failed to unmarshal range %d", id)
			}

			defs[i] = &def
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return spell.NewRangeTableFromDefinitions(defs), nil
}

func (r *redisRepo) memberIDs(ctx context.Context, setKey string) ([]uint32, error) {
	members, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint32, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseUint(member, 10, 32)
		if err != nil {
			return nil, aierr.InvalidArgumentf("malformed id %q in %s", member, setKey)
		}
		ids = append(ids, uint32(id))
	}

	return ids, nil
}

func spellKey(id uint32) string {
	return fmt.Sprintf("%s%d", spellKeyPrefix, id)
}

func rangeKey(index uint32) string {
	return fmt.Sprintf("%s%d", rangeKeyPrefix, index)
}
