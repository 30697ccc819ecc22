package app

import (
	"time"

	"assuredgig/config"
	"assuredgig/internal/api/handlers"
	"assuredgig/internal/events"
	"assuredgig/internal/metrics"
	"assuredgig/internal/payments"
	"assuredgig/internal/realtime"
	"assuredgig/internal/services"
	"assuredgig/internal/session"
	"assuredgig/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// webhookDedupTTL is how long a processed gateway event id is remembered.
const webhookDedupTTL = 72 * time.Hour

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Store       storage.Store
	Sessions    session.Store
	Bus         events.Bus
	Hub         *realtime.Hub
	Metrics     *metrics.Metrics
	Payments    *payments.Registry
	Validator   *validator.Validate

	Users         services.UserService
	Jobs          services.JobService
	Proposals     services.ProposalService
	Contracts     services.ContractService
	PaymentSvc    services.PaymentService
	Chat          services.ChatService
	Notifications services.NotificationService
	Profiles      services.ProfileService
	Gigs          services.GigService

	Notifier *services.Notifier
}

// Infrastructure is what main connects before the application is assembled.
// DBPool and RedisClient may be nil; Store and Sessions may not.
type Infrastructure struct {
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Store       storage.Store
	Sessions    session.Store
	Payments    *payments.Registry
	Metrics     *metrics.Metrics
}

// New wires the services over the given infrastructure and subscribes the
// notifier to the event bus.
func New(cfg *config.Config, infra Infrastructure) (*Application, error) {
	m := infra.Metrics
	if m == nil {
		m = metrics.New()
	}
	registry := infra.Payments
	if registry == nil {
		registry = payments.NewRegistry()
	}

	var dedup payments.Deduplicator
	if infra.RedisClient != nil {
		dedup = payments.NewRedisDeduplicator(infra.RedisClient, webhookDedupTTL)
	}

	bus := events.NewBus()
	hub := realtime.NewHub(infra.RedisClient, m)

	a := &Application{
		Config:      cfg,
		DBPool:      infra.DBPool,
		RedisClient: infra.RedisClient,
		Store:       infra.Store,
		Sessions:    infra.Sessions,
		Bus:         bus,
		Hub:         hub,
		Metrics:     m,
		Payments:    registry,
		Validator:   handlers.NewValidator(),
	}

	a.Users = services.NewUserService(infra.Store, infra.Sessions, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshDuration)
	a.Jobs = services.NewJobService(infra.Store)
	a.Proposals = services.NewProposalService(infra.Store, bus, m)
	a.Contracts = services.NewContractService(infra.Store, bus)
	a.PaymentSvc = services.NewPaymentService(infra.Store, registry, dedup, bus, m, cfg.Payments.Currency)
	a.Chat = services.NewChatService(infra.Store, hub, bus)
	a.Notifications = services.NewNotificationService(infra.Store, hub)
	a.Profiles = services.NewProfileService(infra.Store)
	a.Gigs = services.NewGigService(infra.Store)

	a.Notifier = services.NewNotifier(a.Notifications)
	if err := a.Notifier.Subscribe(bus); err != nil {
		return nil, err
	}
	return a, nil
}

// Close detaches event subscribers. Connections are owned and closed by main.
func (a *Application) Close() {
	if a.Notifier != nil {
		a.Notifier.Unsubscribe(a.Bus)
	}
}
