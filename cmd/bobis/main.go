package main

import (
	"context"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rookgm/bobis/config"
	"github.com/rookgm/bobis/internal/auth"
	"github.com/rookgm/bobis/internal/gateway"
	handler "github.com/rookgm/bobis/internal/handler/http"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/middleware"
	"github.com/rookgm/bobis/internal/register"
	"github.com/rookgm/bobis/internal/repository"
	"github.com/rookgm/bobis/internal/repository/postgres"
	"github.com/rookgm/bobis/internal/s3"
	"github.com/rookgm/bobis/internal/service"
	"github.com/rookgm/bobis/internal/socket"
	"github.com/rookgm/bobis/internal/worker"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// dispatchJournal is storage of confirmed dispatches
type dispatchJournal interface {
	service.DispatchJournalWriter
	service.DispatchJournalReader
}

// newGateways returns gateway forwarding token of request being served and
// gateway for connectivity checks, which run outside any request
func newGateways(apiURL string) (*gateway.Client, *gateway.Client, error) {
	transport, err := gateway.NewBearerTransport(apiURL, gateway.TokenSourceFunc(auth.ForwardedToken), nil)
	if err != nil {
		return nil, nil, err
	}
	return gateway.NewClient(apiURL, transport), gateway.NewClient(apiURL, nil), nil
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context canceled on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// dispatch journal
	var journal dispatchJournal
	if cfg.DatabaseDSN != "" {
		db, err := postgres.New(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Log.Fatal("Error initializing database", zap.Error(err))
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			logger.Log.Fatal("Error migrating database", zap.Error(err))
		}
		journal = repository.NewJournalRepository(db)
	} else {
		logger.Log.Warn("database DSN is empty, dispatch journal is kept in memory")
		journal = repository.NewMemoryJournal()
	}

	tokenKey, err := hex.DecodeString(cfg.Auth.SigningKey)
	if err != nil {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token, err := auth.NewAuthToken(tokenKey)
	if err != nil {
		logger.Log.Fatal("Error creating token verifier", zap.Error(err))
	}

	gw, monitorGW, err := newGateways(cfg.BackendAPIURL)
	if err != nil {
		logger.Log.Fatal("Error creating backend gateway", zap.Error(err))
	}

	// report archive is optional
	var archive service.ReportArchive
	if cfg.S3.Enabled() {
		uploader, err := s3.NewUploader(ctx, cfg.S3)
		if err != nil {
			logger.Log.Fatal("Error creating report archive", zap.Error(err))
		}
		archive = uploader
	}

	// backend connectivity
	monitor := worker.NewConnectivityMonitor(monitorGW, cfg.ProbeInterval)
	go monitor.Run(ctx)

	// pending orders and their live stream
	pending := register.New()
	hub := socket.NewHub()
	unsubscribe := pending.Subscribe(hub.Publish)
	defer unsubscribe()

	// dependency injection
	coilHandler := handler.NewCoilHandler(service.NewCoilService(gw))
	builderHandler := handler.NewBuilderHandler(service.NewOrderBuilder(gw, pending), gw)
	checklistHandler := handler.NewChecklistHandler(service.NewDispatchChecklist(gw, pending, journal, cfg.ChecklistFallback))
	historyHandler := handler.NewHistoryHandler(service.NewDispatchHistory(gw, journal, pending, archive))
	referenceHandler := handler.NewReferenceHandler(service.NewReferenceManager(gw))
	dashboardHandler := handler.NewDashboardHandler(service.NewDashboard(gw, pending, journal, monitor))

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(logger.Logging(logger.Log))

	router.Get(middleware.LoginPath, handler.Login(cfg.Auth))

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))

		group.Get("/api/me", dashboardHandler.Me())
		group.Get("/api/status", dashboardHandler.Status())
		group.Get("/api/dashboard", dashboardHandler.Dashboard())

		group.Get("/api/registros", coilHandler.ListCoils())
		group.Get("/api/registros/opciones", coilHandler.Options())
		group.Post("/api/registros", coilHandler.RegisterCoil())
		group.Put("/api/registros/{id}", coilHandler.UpdateCoil())

		group.Get("/api/pedidos/builder", builderHandler.View())
		group.Post("/api/pedidos/builder/recargar", builderHandler.Reload())
		group.Put("/api/pedidos/builder/busqueda", builderHandler.Search())
		group.Post("/api/pedidos/builder/seleccion", builderHandler.Select())
		group.Delete("/api/pedidos/builder/seleccion/{id}", builderHandler.Deselect())
		group.Put("/api/pedidos/builder/observaciones", builderHandler.SetNotes())
		group.Post("/api/pedidos", builderHandler.Submit())
		group.Get("/api/pedidos/en-curso", builderHandler.InProgress())
		group.Get("/api/pedidos/{id}/detalle", builderHandler.Detail())

		group.Get("/api/despachos/pendientes", checklistHandler.Pending())
		group.Get("/api/despachos/pendientes/ws", handler.ServeWs(hub))
		group.Get("/api/checklist", checklistHandler.View())
		group.Post("/api/checklist/pedido", checklistHandler.Select())
		group.Post("/api/checklist/bobinas/{id}/toggle", checklistHandler.Toggle())
		group.Post("/api/checklist/confirmar", checklistHandler.Confirm())

		group.Get("/api/despachos/historial", historyHandler.Orders())
		group.Get("/api/despachos/{id}/lineas", historyHandler.Lines())
		group.Get("/api/despachos/{id}/pdf", historyHandler.Export())

		group.Get("/api/gestion/tablas", referenceHandler.Tables())
		group.Get("/api/gestion", referenceHandler.View())
		group.Put("/api/gestion/tabla", referenceHandler.SwitchTable())
		group.Post("/api/gestion/filas", referenceHandler.AddRow())
		group.Delete("/api/gestion/filas", referenceHandler.DeleteRow())
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Log.Info("Shutting down server", zap.Int("pending_orders", pending.Len()), zap.Int("ws_clients", hub.Len()))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Error shutting down server", zap.Error(err))
		}
	}()

	logger.Log.Info("Running server",
		zap.String("addr", cfg.ServerAddr),
		zap.String("backend", cfg.BackendAPIURL),
		zap.Bool("placeholders", cfg.ChecklistFallback))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
