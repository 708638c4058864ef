package interfaces

import (
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver"

	"github.com/google/wire"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)
