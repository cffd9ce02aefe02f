package app

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/kordlan/harmonia_backend/config"
	"github.com/kordlan/harmonia_backend/internal/repo"
	"github.com/kordlan/harmonia_backend/internal/service/profile"
	"github.com/kordlan/harmonia_backend/internal/service/reference"
	"github.com/kordlan/harmonia_backend/internal/service/search"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideReferenceService,
		ProvideSearchService,
		ProvideProfileService,
	),
)

func ProvideReferenceService(store repo.Store, rdb *redis.Client, cfg *config.Config) reference.Service {
	ttl := time.Duration(cfg.Reference.CacheTTLMinutes) * time.Minute
	return reference.New(store, rdb, ttl)
}

func ProvideSearchService(store repo.Store, ref reference.Service) search.Service {
	return search.New(store, ref)
}

func ProvideProfileService(store repo.Store) profile.Service {
	return profile.New(store)
}
