package bootstrap

import (
	"context"
	"log"
	"time"

	"counselling-portal-be/internal/config"
	"counselling-portal-be/internal/controller"
	"counselling-portal-be/internal/pkg/logger"
	"counselling-portal-be/internal/repository/contract"
	"counselling-portal-be/internal/repository/memory"
	"counselling-portal-be/internal/repository/rediscache"
	"counselling-portal-be/internal/repository/unitofwork"
	"counselling-portal-be/internal/service"
	"counselling-portal-be/pkg/audit"
	"counselling-portal-be/pkg/bus"
	"counselling-portal-be/pkg/report"

	pktNats "counselling-portal-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ReportController controller.IReportController

	// Services used by middleware
	PrincipalService service.IPrincipalService

	// Background consumers (started by main.go)
	AuditTrail *audit.Trail

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	clock := report.NewSystemClock(cfg.Report.Location)

	c := &Container{Logger: sysLogger}

	// 2. Event Bus. Falls back to an in-process bus when NATS is unreachable.
	auditSink, auditSource := c.eventBus(cfg.App.NatsURL)

	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	auditPublisher := audit.NewBusPublisher(auditSink, sysLogger)
	c.AuditTrail = audit.NewTrail(auditSource, auditLogger)

	// 3. Services
	principalCache := c.principalCache(cfg)
	c.PrincipalService = service.NewPrincipalService(uowFactory, principalCache, sysLogger)

	reportService := service.NewReportService(uowFactory, clock, auditPublisher, sysLogger)

	// 4. Controllers
	c.ReportController = controller.NewReportController(reportService)

	return c
}

func (c *Container) principalCache(cfg *config.Config) contract.PrincipalCache {
	if cfg.App.RedisURL == "" {
		return memory.NewPrincipalRepository(cfg.Auth.PrincipalCacheTTL)
	}

	rdb := rediscache.NewClient(cfg.App.RedisURL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-process principal cache", err)
		_ = rdb.Close()
		return memory.NewPrincipalRepository(cfg.Auth.PrincipalCacheTTL)
	}

	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return rediscache.NewPrincipalRepository(rdb, cfg.Auth.PrincipalCacheTTL)
}

func (c *Container) eventBus(url string) (audit.EventSink, audit.EventSource) {
	natsPub, err := pktNats.NewPublisher(url)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		return c.localBus()
	}

	natsSub, err := pktNats.NewSubscriber(url)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsPub.Close()
		return c.localBus()
	}

	c.closers = append(c.closers, natsPub.Close, natsSub.Close)
	return natsPub, natsSub
}

func (c *Container) localBus() (audit.EventSink, audit.EventSource) {
	log.Printf("[WARN] Using in-process event bus, audit events will not survive restarts")
	local := bus.NewLocalBus()
	c.closers = append(c.closers, local.Close)
	return local, local
}

// Close releases the NATS connections and flushes the logger.
func (c *Container) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
	_ = c.Logger.Sync()
}
