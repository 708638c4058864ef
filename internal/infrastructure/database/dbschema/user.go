package dbschema

import (
	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User represents the persisted account schema.
type User struct {
	BaseModel
	Name         string  `gorm:"type:varchar(255);not null"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	APIKey       string  `gorm:"type:text;not null"`
	ProfileImage *string `gorm:"type:text"`
}

// NewSchemaUser converts a domain user into a schema instance.
func NewSchemaUser(u *user.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		APIKey:       u.APIKey,
		ProfileImage: u.ProfileImage,
	}
}

// EtoD converts a schema user back to the domain representation.
func (u *User) EtoD() *user.User {
	if u == nil {
		return nil
	}

	return &user.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		APIKey:       u.APIKey,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
