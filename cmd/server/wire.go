//go:build wireinject

package main

import (
	"github.com/eappleew/Chat-Cheappt/internal/domain"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
