package conversationrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database/dbschema"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type ConversationGormRepository struct {
	db *gorm.DB
}

var _ conversation.Repository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *gorm.DB) conversation.Repository {
	return &ConversationGormRepository{db: db}
}

func (repo *ConversationGormRepository) CreateWithFirstMessage(ctx context.Context, conv *conversation.Conversation, msg *conversation.Message) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		convEntity := dbschema.NewSchemaConversation(conv)
		if err := tx.Create(convEntity).Error; err != nil {
			return err
		}

		msgEntity := dbschema.NewSchemaMessage(msg)
		msgEntity.ConversationID = convEntity.ID
		if err := tx.Create(msgEntity).Error; err != nil {
			return err
		}

		conv.ID = convEntity.ID
		conv.CreatedAt = convEntity.CreatedAt
		conv.UpdatedAt = convEntity.UpdatedAt
		msg.ID = msgEntity.ID
		msg.ConversationID = msgEntity.ConversationID
		msg.CreatedAt = msgEntity.CreatedAt
		return nil
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation with first message",
			err,
			"2e8f6a1c-5d34-4b97-8e02-9c7b4d1a3f56",
		)
	}
	return nil
}

func (repo *ConversationGormRepository) FindByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	var entity dbschema.Conversation
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find conversation by ID",
			err,
			"a1c7e3b9-6f24-48d5-b0a8-3e9d5c2f7b14",
		)
	}
	return entity.EtoD(), nil
}

func (repo *ConversationGormRepository) ListByUser(ctx context.Context, userID uint) ([]*conversation.Conversation, error) {
	var entities []dbschema.Conversation
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list conversations",
			err,
			"d4b2f8e6-0a51-4c73-9d28-6b1e3a7c5f90",
		)
	}

	conversations := make([]*conversation.Conversation, 0, len(entities))
	for i := range entities {
		conversations = append(conversations, entities[i].EtoD())
	}
	return conversations, nil
}

func (repo *ConversationGormRepository) AddMessage(ctx context.Context, msg *conversation.Message) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entity := dbschema.NewSchemaMessage(msg)
		if err := tx.Create(entity).Error; err != nil {
			return err
		}

		// Keep the parent's updated_at tracking the latest message. The
		// listing endpoint orders by created_at, so this is metadata only.
		if err := tx.Model(&dbschema.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("updated_at", gorm.Expr("NOW()")).
			Error; err != nil {
			return err
		}

		msg.ID = entity.ID
		msg.CreatedAt = entity.CreatedAt
		return nil
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to add message",
			err,
			"9f3a5c1e-7b82-4d60-a4f9-2c6e8b0d4a37",
		)
	}
	return nil
}

func (repo *ConversationGormRepository) ListMessages(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	var entities []dbschema.Message
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"6e0d8b4a-3c97-45f1-8a26-5d9f7e2b1c83",
		)
	}

	messages := make([]*conversation.Message, 0, len(entities))
	for i := range entities {
		messages = append(messages, entities[i].EtoD())
	}
	return messages, nil
}

func (repo *ConversationGormRepository) DeleteCascade(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).
			Delete(&dbschema.Message{}).
			Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).
			Delete(&dbschema.Conversation{}).
			Error
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete conversation",
			err,
			"1b9e7d3f-4a62-40c8-b5e1-8f0a2c6d9b45",
		)
	}
	return nil
}

func (repo *ConversationGormRepository) CountMessagesByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Message{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.user_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count messages",
			err,
			"e5c3a9f7-2d81-4b64-90c3-7a4e6b8d2f10",
		)
	}
	return count, nil
}

func (repo *ConversationGormRepository) SumMessageCostByUser(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Message{}).
		Select("SUM(messages.cost)").
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.user_id = ?", userID).
		Scan(&total).
		Error
	if err != nil {
		return decimal.Zero, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to sum message cost",
			err,
			"8a6f2e4d-9c05-41b7-a3d8-0e5b7c1f9a62",
		)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
