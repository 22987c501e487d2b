package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/scripted-ai/internal/config"
	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	"github.com/KirkDiggler/scripted-ai/internal/repositories/spelldata"
	"github.com/KirkDiggler/scripted-ai/internal/services/capability"
)

// spellindex loads the static content tables, builds the capability
// index, and dumps either whole-table classification counts or a single
// spell's summary when an id argument is given.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo := buildRepository(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	spells, err := repo.GetSpellTable(ctx)
	if err != nil {
		log.Fatalf("Failed to load spell table: %v", err)
	}

	ranges, err := repo.GetRangeTable(ctx)
	if err != nil {
		log.Fatalf("Failed to load range table: %v", err)
	}

	log.Printf("Loaded %d spells (id space %d) and %d ranges", spells.Len(), spells.MaxID(), ranges.Len())

	index := capability.BuildIndex(spells)

	if len(os.Args) > 1 {
		id, parseErr := strconv.ParseUint(os.Args[1], 10, 32)
		if parseErr != nil {
			log.Fatalf("Invalid spell id %q: %v", os.Args[1], parseErr)
		}
		printSummary(spells, index, uint32(id))
		return
	}

	printCounts(index)
}

func buildRepository(cfg *config.Config) spelldata.Repository {
	if cfg.Redis.URL == "" {
		log.Printf("Using content file: %s", cfg.Content.Path)
		return spelldata.NewYAMLFile(cfg.Content.Path)
	}

	log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Printf("Falling back to content file: %s", cfg.Content.Path)
		return spelldata.NewYAMLFile(cfg.Content.Path)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Printf("Falling back to content file: %s", cfg.Content.Path)
		return spelldata.NewYAMLFile(cfg.Content.Path)
	}

	return spelldata.NewRedis(client)
}

func printSummary(spells *spell.Table, index *capability.Index, id uint32) {
	def := spells.Lookup(id)
	if def == nil {
		fmt.Printf("spell %d: no definition (zero summary)\n", id)
		return
	}

	summary := index.Summary(id)
	fmt.Printf("spell %d (%s)\n", id, def.Name)
	fmt.Printf("  targets: %s\n", targetClassNames(summary.Targets))
	fmt.Printf("  effects: %s\n", effectClassNames(summary.Effects))
}

func printCounts(index *capability.Index) {
	targetCounts := make(map[capability.TargetClass]int)
	effectCounts := make(map[capability.EffectClass]int)

	for id := uint32(0); id < index.MaxID(); id++ {
		summary := index.Summary(id)
		for _, c := range allTargetClasses {
			if summary.Targets.Has(c) {
				targetCounts[c]++
			}
		}
		for _, c := range allEffectClasses {
			if summary.Effects.Has(c) {
				effectCounts[c]++
			}
		}
	}

	fmt.Println("target class counts:")
	for _, c := range allTargetClasses {
		fmt.Printf("  %-14s %d\n", c, targetCounts[c])
	}

	fmt.Println("effect class counts:")
	for _, c := range allEffectClasses {
		fmt.Printf("  %-14s %d\n", c, effectCounts[c])
	}
}

var allTargetClasses = []capability.TargetClass{
	capability.TargetSelf,
	capability.TargetSingleEnemy,
	capability.TargetAoeEnemy,
	capability.TargetAnyEnemy,
	capability.TargetSingleFriend,
	capability.TargetAoeFriend,
	capability.TargetAnyFriend,
}

var allEffectClasses = []capability.EffectClass{
	capability.EffectDamage,
	capability.EffectHealing,
	capability.EffectAura,
}

func targetClassNames(set capability.TargetClasses) string {
	names := make([]string, 0, len(allTargetClasses))
	for _, c := range allTargetClasses {
		if set.Has(c) {
			names = append(names, c.String())
		}
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func effectClassNames(set capability.EffectClasses) string {
	names := make([]string, 0, len(allEffectClasses))
	for _, c := range allEffectClasses {
		if set.Has(c) {
			names = append(names, c.String())
		}
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
