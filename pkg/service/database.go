package service

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/romashorodok/meeting-authority/internal/storage"
	"github.com/romashorodok/meeting-authority/pkg/variables"
	"go.uber.org/fx"
)

func database(lifecycle fx.Lifecycle) (*sql.DB, error) {
	db, err := sql.Open("postgres", variables.Env(
		variables.DATABASE_URL_NAME,
		variables.DATABASE_URL_DEFAULT,
	))
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.PingContext(ctx)
		},
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func queries(db *sql.DB) *storage.Queries {
	return storage.New(db)
}

var DatabaseModule = fx.Module("database", fx.Provide(
	database,
	queries,
))
