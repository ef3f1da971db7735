package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/TiaanKleinhans/custom-golf-events/external/webhook"
	"github.com/TiaanKleinhans/custom-golf-events/internal/config"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
	"github.com/TiaanKleinhans/custom-golf-events/internal/infrastructure/repository/memory"
	"github.com/TiaanKleinhans/custom-golf-events/internal/infrastructure/repository/postgres"
	"github.com/TiaanKleinhans/custom-golf-events/internal/interfaces/httpapi"
	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/cache"
	idgen "github.com/TiaanKleinhans/custom-golf-events/internal/platform/id"
	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/logging"
	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/notify"
	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

type repositories struct {
	events  event.Repository
	holes   hole.Repository
	groups  group.Repository
	members member.Repository
	clubs   club.Repository
}

func newMemoryRepositories() repositories {
	return repositories{
		events:  memory.NewEventRepository(memory.SeedEvents()),
		holes:   memory.NewHoleRepository(memory.SeedHoles(), memory.SeedHoleClubs()),
		groups:  memory.NewGroupRepository(memory.SeedGroups(), memory.SeedAssignments(), memory.SeedMemberships()),
		members: memory.NewMemberRepository(memory.SeedMembers()),
		clubs:   memory.NewClubRepository(memory.SeedClubs()),
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		events:  postgres.NewEventRepository(db),
		holes:   postgres.NewHoleRepository(db),
		groups:  postgres.NewGroupRepository(db),
		members: postgres.NewMemberRepository(db),
		clubs:   postgres.NewClubRepository(db),
	}
}

// NewHTTPServer assembles repositories, services and the router into a
// ready-to-run server. The returned cleanup releases the notify hub and
// the database pool and must be called after shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	hub, err := notify.NewHub(cfg.NotifyWorkers)
	if err != nil {
		return nil, nil, fmt.Errorf("create notify hub: %w", err)
	}

	var db *sqlx.DB
	var repos repositories
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		repos = newMemoryRepositories()
	} else {
		db, err = openDB(cfg)
		if err != nil {
			hub.Close()
			return nil, nil, err
		}
		logger.Info("connected to postgres", "db_name", dbNameFromURL(cfg.DBURL))
		repos = newPostgresRepositories(db)
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	idGen := idgen.NewRandomGenerator()

	eventSvc := usecase.NewEventService(repos.events, repos.holes, idGen)
	holeSvc := usecase.NewHoleService(repos.events, repos.holes, repos.clubs, idGen)
	groupSvc := usecase.NewGroupService(repos.holes, repos.groups, repos.members, hub, idGen)
	memberSvc := usecase.NewMemberService(repos.members, idGen)
	clubSvc := usecase.NewClubService(repos.clubs, idGen)
	playSvc := usecase.NewPlayService(repos.holes, repos.groups, repos.members, hub)
	standingsSvc := usecase.NewStandingsService(repos.events, repos.holes, repos.groups, repos.members, store)

	// Any published change drops the cached standings so the next read
	// recomputes from the repositories.
	unsubscribeInvalidate := hub.SubscribeAll(func() {
		standingsSvc.InvalidateAll(context.Background())
	})

	unsubscribeWebhook := func() {}
	if cfg.WebhookEnabled {
		publisher := webhook.NewPublisher(webhook.Config{
			Endpoints: cfg.WebhookEndpoints,
			Timeout:   cfg.WebhookTimeout,
		}, logger)
		unsubscribeWebhook = hub.SubscribeAll(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.WebhookTimeout+time.Second)
			defer cancel()
			if err := publisher.Publish(ctx, "standings.changed"); err != nil {
				logger.Warn("publish change webhook", "error", err)
			}
		})
		logger.Info("webhook notifications enabled", "endpoints", len(cfg.WebhookEndpoints))
	}

	handler := httpapi.NewHandler(eventSvc, holeSvc, groupSvc, memberSvc, clubSvc, playSvc, standingsSvc, hub, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminPIN)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		unsubscribeInvalidate()
		unsubscribeWebhook()
		hub.Close()
		if db != nil {
			_ = db.Close()
		}
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() {
		unsubscribeInvalidate()
		unsubscribeWebhook()
		hub.Close()
		if db != nil {
			_ = db.Close()
		}
	}

	return server, cleanup, nil
}
