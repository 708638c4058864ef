package domain

import (
	"github.com/google/wire"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	"github.com/eappleew/Chat-Cheappt/internal/domain/usage"
	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	ProvideUserService,
	conversation.NewService,
	genimage.NewService,
	usage.NewService,
)

func ProvideUserService(repo user.Repository, cfg *config.Config) *user.Service {
	return user.NewService(repo, cfg.BcryptCost)
}
