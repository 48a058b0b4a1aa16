//go:build wireinject
// +build wireinject

package di

import (
	"xterminio/config"
	"xterminio/infras/otel"
	"xterminio/infras/sqlite"
	appointmentHandler "xterminio/internal/handlers/appointment"
	clientHandler "xterminio/internal/handlers/client"
	healthHandler "xterminio/internal/handlers/health"
	"xterminio/transport/http"
	"xterminio/transport/http/router"

	appointmentRepository "xterminio/internal/domains/appointment/repository"
	appointmentService "xterminio/internal/domains/appointment/service"
	clientRepository "xterminio/internal/domains/client/repository"
	clientService "xterminio/internal/domains/client/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var domains = wire.NewSet(
	appointmentDomain,
	clientDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	appointmentHandler.New,
	clientHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
