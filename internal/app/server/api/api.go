// The pinning registry exposes:
//
//	GET    /api/v1/health      # Health check (public)
//	POST   /api/v1/pins        # Pin a JSON payload
//	GET    /api/v1/pins        # List pins (type filter + substring search)
//	GET    /api/v1/pins/{cid}  # Pin metadata
//	GET    /ipfs/{cid}         # Raw pinned content, gateway style
//	DELETE /api/v1/pins/{cid}  # Unpin
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "medvault/internal/app/server/api/http/health"
	"medvault/internal/app/server/api/http/middleware"
	"medvault/internal/app/server/api/http/middleware/logger"
	pinAPI "medvault/internal/app/server/api/http/pin"
	"medvault/internal/domain/pin"
	"medvault/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health *healthAPI.Handler
	Pin    *pinAPI.Handler
}

// New creates a *chi.Mux with all operations registered through huma.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("MedVault Pinning Registry", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Pin.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	pinRepo := postgres.NewPinRepository(storage, log)
	pinService := pin.NewService(pinRepo, log)
	middlewares.Add(loggerMW.Middleware())
	pinHandler := pinAPI.NewHandler(pinService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Pin:    pinHandler,
	}
}
