package repository

import (
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database/repository/conversationrepo"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database/repository/genimagerepo"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database/repository/userrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	conversationrepo.NewConversationGormRepository,
	genimagerepo.NewGenImageGormRepository,
)
