package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	authhandler "github.com/tiyodv/freeCodeCamp/internal/auth/handler"
	authservice "github.com/tiyodv/freeCodeCamp/internal/auth/service"
	"github.com/tiyodv/freeCodeCamp/internal/auth/store/session"
	curriculumhandler "github.com/tiyodv/freeCodeCamp/internal/curriculum/handler"
	"github.com/tiyodv/freeCodeCamp/internal/curriculum/render"
	curriculumservice "github.com/tiyodv/freeCodeCamp/internal/curriculum/service"
	curriculumstore "github.com/tiyodv/freeCodeCamp/internal/curriculum/store"
	"github.com/tiyodv/freeCodeCamp/internal/events"
	"github.com/tiyodv/freeCodeCamp/internal/events/publisher"
	"github.com/tiyodv/freeCodeCamp/internal/i18n"
	i18nhandler "github.com/tiyodv/freeCodeCamp/internal/i18n/handler"
	jwttoken "github.com/tiyodv/freeCodeCamp/internal/jwt_token"
	"github.com/tiyodv/freeCodeCamp/internal/platform/config"
	"github.com/tiyodv/freeCodeCamp/internal/platform/httpserver"
	"github.com/tiyodv/freeCodeCamp/internal/platform/logger"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/platform/middleware"
	redisplatform "github.com/tiyodv/freeCodeCamp/internal/platform/redis"
	"github.com/tiyodv/freeCodeCamp/internal/platform/scheduler"
	profilehandler "github.com/tiyodv/freeCodeCamp/internal/profile/handler"
	profileservice "github.com/tiyodv/freeCodeCamp/internal/profile/service"
	progresshandler "github.com/tiyodv/freeCodeCamp/internal/progress/handler"
	progressservice "github.com/tiyodv/freeCodeCamp/internal/progress/service"
	progressstore "github.com/tiyodv/freeCodeCamp/internal/progress/store"
	settingshandler "github.com/tiyodv/freeCodeCamp/internal/settings/handler"
	settingsservice "github.com/tiyodv/freeCodeCamp/internal/settings/service"
	transporthttp "github.com/tiyodv/freeCodeCamp/internal/transport/http"
	userstore "github.com/tiyodv/freeCodeCamp/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Translations. A broken catalog dir is survivable: the compiled-in
	// fallbacks still answer every key.
	translator, err := i18n.LoadDir(cfg.LocalesDir)
	if err != nil {
		log.Warn("load locales", "dir", cfg.LocalesDir, "error", err)
		translator = i18n.NewTranslator(cfg.DefaultLocale)
	}

	// Stores. DATABASE_URL selects PostgreSQL, otherwise everything runs
	// in memory.
	var (
		users       userstore.Store
		completions progressstore.Store
		curriculum  curriculumstore.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		users = userstore.NewPostgresStore(db)
		curriculum = curriculumstore.NewSQLStore(sqlx.NewDb(db, "postgres"))

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		completions = progressstore.NewPostgresStore(pool)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		users = userstore.NewMemoryStore()
		completions = progressstore.NewMemoryStore()
		curriculum = curriculumstore.NewMemoryStore()
	}

	var sessions session.Store
	redisClient, err := redisplatform.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient.Client, cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryStore()
	}

	// Event stream. Without brokers configured events are dropped.
	var emitter events.Emitter = events.Nop{}
	var pub *publisher.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		pub, err = publisher.New(cfg.Kafka, log, m)
		if err != nil {
			return err
		}
		emitter = pub
	}

	jwtService := jwttoken.NewJWTService(cfg.JWT.SigningKey, cfg.JWT.Issuer, cfg.JWT.Audience)
	jwtValidator := jwttoken.NewMiddlewareAdapter(jwtService)

	authSvc := authservice.NewService(users, sessions, jwtService, emitter, m, cfg.SessionTTL, cfg.JWT.AccessTTL)
	settingsSvc := settingsservice.NewService(users, emitter, m)
	progressSvc := progressservice.NewService(completions, users, emitter, m)
	profileSvc := profileservice.NewService(users, sessions, completions, emitter)
	curriculumSvc := curriculumservice.NewService(curriculum, render.NewMarkdown())

	limiter := middleware.NewIPRateLimiter(cfg.SigninRatePerMin, cfg.SigninBurst)

	router := transporthttp.NewRouter(
		authhandler.New(authSvc, log, m, jwtValidator, limiter),
		settingshandler.New(settingsSvc, log, m, jwtValidator),
		progresshandler.NewHandler(log, progressSvc, m, jwtValidator),
		profilehandler.NewHandler(log, profileSvc, progressSvc, m, jwtValidator),
		curriculumhandler.NewHandler(log, curriculumSvc, m),
		i18nhandler.NewHandler(log, translator, m),
	)

	server := httpserver.New(cfg.Addr, router)

	jobs := scheduler.New(log, sessions, m)
	if err := jobs.Start(); err != nil {
		return err
	}
	defer jobs.Stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if pub != nil {
		g.Go(func() error { return pub.Run(ctx) })
	}

	g.Go(func() error {
		if err := i18n.Watch(ctx, cfg.LocalesDir, translator, log, m); err != nil {
			log.Warn("locale watcher stopped", "error", err)
		}
		return nil
	})

	return g.Wait()
}
