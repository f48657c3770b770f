package main

import (
	"context"
	"flag"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outliner-coach/letmeknowme/internal/config"
	"github.com/outliner-coach/letmeknowme/internal/logger"
	"github.com/outliner-coach/letmeknowme/internal/presenter"
	"github.com/outliner-coach/letmeknowme/internal/repository"
)

// seed writes the default content table into MongoDB: archetype names and
// descriptions, pair comments, the keyword prompt (q10_text) and keyword_list.
// Question and choice texts are left to the survey form's fallbacks.
func main() {
	overwrite := flag.Bool("overwrite", false, "replace keys that already have a value")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("", "info").WithError(err).Fatal("invalid configuration")
	}
	log := logger.New(cfg.Environment, cfg.LogLevel).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)

	repo := repository.NewContentRepo(client.Database(cfg.MongoDB))

	content := presenter.DefaultContent()
	if !*overwrite {
		existing, err := repo.Get(ctx)
		if err != nil {
			log.WithError(err).Fatal("failed to read existing content")
		}
		for key, value := range existing {
			if value != "" {
				delete(content, key)
			}
		}
	}

	if len(content) == 0 {
		log.Info("content already seeded")
		return
	}

	if err := repo.Upsert(ctx, content); err != nil {
		log.WithError(err).Fatal("failed to write content")
	}
	log.WithField("keys", len(content)).WithField("database", cfg.MongoDB).Info("content seeded")
}
