package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/scripted-ai/internal/config"
	"github.com/KirkDiggler/scripted-ai/internal/repositories/spelldata"
)

// seed-content copies the yaml content tables into Redis so deployments
// can serve them from there.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Redis.URL == "" {
		log.Fatal("REDIS_URL is required for seeding")
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	source := spelldata.NewYAMLFile(cfg.Content.Path)
	dest := spelldata.NewRedis(client)

	spells, err := source.GetSpellTable(ctx)
	if err != nil {
		log.Fatalf("Failed to load spell table from %s: %v", cfg.Content.Path, err)
	}

	ranges, err := source.GetRangeTable(ctx)
	if err != nil {
		log.Fatalf("Failed to load range table from %s: %v", cfg.Content.Path, err)
	}

	seeded := 0
	for id := uint32(0); id < spells.MaxID(); id++ {
		def := spells.Lookup(id)
		if def == nil {
			continue
		}
		if err := dest.SaveSpell(ctx, def); err != nil {
			log.Fatalf("Failed to store spell %d: %v", id, err)
		}
		seeded++
	}
	log.Printf("Seeded %d spells", seeded)

	seeded = 0
	for _, def := range ranges.Definitions() {
		if err := dest.SaveRange(ctx, def); err != nil {
			log.Fatalf("Failed to store range %d: %v", def.Index, err)
		}
		seeded++
	}
	log.Printf("Seeded %d ranges", seeded)
}
