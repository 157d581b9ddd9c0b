package app

import (
	"context"
	"log"
	"time"

	"colab/internal/config"
	"colab/internal/database"
	"colab/internal/database/migration"
	dbpostgres "colab/internal/database/postgres"
	"colab/internal/database/seeder"
	"colab/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Seed.SeedOnStart {
		runner := seeder.Runner{Seeders: []seeder.Seeder{seeder.ProfilesSeeder{}}}
		if err := runner.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
