package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/preview"
	reportrepo "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/user"
	workspacerepo "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/workspace"
	authpkg "github.com/heartmarshall/fieldreport-backend/internal/auth"
	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/service/auth"
	"github.com/heartmarshall/fieldreport-backend/internal/service/detection"
	"github.com/heartmarshall/fieldreport-backend/internal/service/enrichment"
	"github.com/heartmarshall/fieldreport-backend/internal/service/item"
	"github.com/heartmarshall/fieldreport-backend/internal/service/report"
	"github.com/heartmarshall/fieldreport-backend/internal/service/workspace"
	"github.com/heartmarshall/fieldreport-backend/internal/transport/middleware"
	"github.com/heartmarshall/fieldreport-backend/internal/transport/rest"
)

// Deps are the infrastructure pieces the HTTP stack is built from.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Pool     *pgxpool.Pool
	Files    FileStore
	Gateways *Gateways
	Locks    Locker
	Limiter  middleware.Limiter
	Version  string
	// Health lists extra components probed by /ready and /health.
	Health map[string]Pinger
}

// NewHandler wires repositories, services and REST handlers into one
// http.Handler with the full middleware chain.
func NewHandler(d Deps) http.Handler {
	cfg, logger := d.Config, d.Logger
	txm := postgres.NewTxManager(d.Pool)

	users := userrepo.New(d.Pool)
	tokens := token.New(d.Pool)
	workspaces := workspacerepo.New(d.Pool)
	items := itemrepo.New(d.Pool)
	reports := reportrepo.New(d.Pool)
	previews := preview.New(d.Pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := auth.NewService(logger, users, tokens, jwtMgr, cfg.Auth)

	enricher := enrichment.NewService(logger, items, d.Files, d.Gateways.Transcriber, d.Gateways.Text, cfg.Pipeline.Concurrency)
	workspaceService := workspace.NewService(logger, workspaces, items, txm)
	itemService := item.NewService(logger, items, workspaces, previews, d.Files, enricher, txm, cfg.Upload)
	reportService := report.NewService(logger, workspaces, items, reports, enricher, d.Gateways.Text, d.Locks, cfg.Pipeline.LockTTL)
	detectionService := detection.NewService(logger, items, previews, d.Files, d.Gateways.Detector)

	health := rest.NewHealthHandler(d.Pool, d.Version)
	for name, p := range d.Health {
		health.WithComponent(name, p)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:     health,
		Auth:       rest.NewAuthHandler(authService, logger),
		Items:      rest.NewItemHandler(itemService, cfg.Upload, logger),
		Detection:  rest.NewDetectionHandler(detectionService, logger),
		Workspaces: rest.NewWorkspaceHandler(workspaceService, reportService, logger),
		Reports:    rest.NewReportHandler(reportService, logger),
	}, middleware.RateLimit(d.Limiter, cfg.RateLimit.AuthPerMinute))

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)
	return otelhttp.NewHandler(chain(mux), "fieldreport")
}
