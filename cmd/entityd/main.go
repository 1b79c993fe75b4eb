package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/entitykit/handler"
	"github.com/dmitrymomot/entitykit/migrations"
	entitymodule "github.com/dmitrymomot/entitykit/modules/entity"
	"github.com/dmitrymomot/entitykit/pkg/audit"
	"github.com/dmitrymomot/entitykit/pkg/clientip"
	"github.com/dmitrymomot/entitykit/pkg/config"
	"github.com/dmitrymomot/entitykit/pkg/httpserver"
	"github.com/dmitrymomot/entitykit/pkg/logger"
	"github.com/dmitrymomot/entitykit/pkg/pg"
	"github.com/dmitrymomot/entitykit/pkg/redis"
	"github.com/dmitrymomot/entitykit/pkg/requestid"
	"github.com/dmitrymomot/entitykit/pkg/session"
	"github.com/dmitrymomot/entitykit/svc/entity"
	"github.com/dmitrymomot/entitykit/svc/tenant"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_SERVICE_NAME" envDefault:"entityd"`
	Migrate     bool   `env:"APP_MIGRATE" envDefault:"true"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("entityd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     appConfig
		pgCfg      pg.Config
		redisCfg   redis.Config
		httpCfg    httpserver.Config
		sessionCfg session.Config
		tenantCfg  tenant.Config
		cacheCfg   entity.CacheConfig
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&pgCfg),
		config.Load(&redisCfg),
		config.Load(&httpCfg),
		config.Load(&sessionCfg),
		config.Load(&tenantCfg),
		config.Load(&cacheCfg),
	); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), tenant.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if appCfg.Migrate {
		if err := pg.Migrate(ctx, pool, pgCfg, migrations.FS, ".", log); err != nil {
			return err
		}
	}

	rdb, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	sessions := session.NewFromConfig(sessionCfg,
		session.WithStore(session.NewRedisStore(rdb, sessionCfg.RedisKeyPrefix)),
		session.WithLogger(log),
	)
	defer func() { _ = sessions.Close() }()

	tenants := newTenantLookup(tenantCfg, pool, rdb, log)
	auditLog := audit.NewLogger(audit.NewPGStorage(pool),
		audit.WithRequestIDExtractor(func(ctx context.Context) (string, bool) {
			id := requestid.FromContext(ctx)
			return id, id != ""
		}),
		audit.WithIPExtractor(clientip.Extractor()),
	)
	entities := newEntityService(cacheCfg, pool, rdb, auditLog, log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(rdb),
	))

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware, tenants.Middleware)
		r.Mount("/entities", entitymodule.NewHandler(entities, tenants, log).Handle())
	})

	return httpserver.New(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

// Tenants are resolved from the session binding first, then the header, then
// the subdomain. Whatever the source, the session must be bound to the tenant.
func newTenantLookup(cfg tenant.Config, pool *pgxpool.Pool, rdb goredis.UniversalClient, log *slog.Logger) *tenant.Lookup {
	resolvers := []tenant.Resolver{
		tenant.NewSessionResolver(),
		tenant.NewHeaderResolver(cfg.HeaderName),
	}
	if cfg.BaseDomain != "" {
		resolvers = append(resolvers, tenant.NewSubdomainResolver(cfg.BaseDomain))
	}

	return tenant.NewLookup(
		tenant.NewCompositeResolver(resolvers...),
		tenant.NewPGProvider(pool),
		tenant.WithCache(tenant.TieredCache{
			tenant.NewLRUCache(cfg.CacheSize, cfg.CacheTTL),
			tenant.NewRedisCache(rdb, cfg.RedisKeyPrefix, cfg.CacheTTL),
		}),
		tenant.WithRequireActive(!cfg.AllowInactive),
		tenant.WithAuthorizer(tenant.SessionMember()),
		tenant.WithLogger(log),
	)
}

func newEntityService(cfg entity.CacheConfig, pool *pgxpool.Pool, rdb goredis.UniversalClient, auditor entity.Auditor, log *slog.Logger) entity.Service {
	svc := entity.NewService(entity.NewPGStorage(pool),
		entity.WithAuditor(auditor),
		entity.WithLogger(log),
	)
	if !cfg.Enabled {
		return svc
	}
	return entity.NewCachedService(svc, rdb, cfg, entity.WithCacheLogger(log))
}
