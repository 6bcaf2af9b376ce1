package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"safar/config"
	"safar/infras/otel"
	"safar/infras/redis"
	"safar/internal/domains/packages/model"
	"safar/shared/identifier"
	"safar/shared/kvstore"
	"safar/shared/logger"
	"safar/shared/timezone"
)

// Seeds the KV store with the initial package catalog. Safe to re-run: it
// refuses to touch a store that already has packages.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()

	ot := otel.New(cfg)
	kv := kvstore.New(redis.New(cfg), ot)
	idGen := identifier.New()

	existing, err := kv.GetByPrefix(ctx, model.KeyPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check existing packages")
	}

	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("Packages already seeded, nothing to do.")

		return
	}

	now := timezone.Now()

	packages := []model.Package{
		{
			ID:          idGen.NextID(model.KeyPrefix),
			Title:       "Hajj Premium",
			Description: "Complete Hajj journey with five-star accommodation near the Haram, guided rituals, and full board.",
			Type:        model.TypeHajj,
			Price:       5999,
			Duration:    "21 days",
			Features:    []string{"5-star hotel", "Guided rituals", "Full board meals", "Visa processing"},
			Active:      true,
			CreatedAt:   now,
		},
		{
			ID:          idGen.NextID(model.KeyPrefix),
			Title:       "Umrah Essentials",
			Description: "A focused Umrah trip with comfortable lodging, return flights, and local transport included.",
			Type:        model.TypeUmrah,
			Price:       2999,
			Duration:    "10 days",
			Features:    []string{"4-star hotel", "Return flights", "Airport transfers", "Visa processing"},
			Active:      true,
			CreatedAt:   now,
		},
		{
			ID:          idGen.NextID(model.KeyPrefix),
			Title:       "Study Abroad Starter",
			Description: "University placement support, student visa guidance, and first-month accommodation.",
			Type:        model.TypeStudyAbroad,
			Price:       1999,
			Duration:    "Per program",
			Features:    []string{"University placement", "Visa guidance", "First-month housing"},
			Active:      true,
			CreatedAt:   now,
		},
	}

	for _, pkg := range packages {
		if err := kv.Set(ctx, pkg.ID, pkg); err != nil {
			log.Fatal().Err(err).Str("id", pkg.ID).Msg("failed to seed package")
		}

		log.Info().Str("id", pkg.ID).Str("title", pkg.Title).Msg("Seeded package.")
	}

	log.Info().Int("count", len(packages)).Msg("Package catalog seeded.")
}
