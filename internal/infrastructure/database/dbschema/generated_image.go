package dbschema

import (
	"time"

	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(GeneratedImage{})
}

// GeneratedImage records an image produced for a user, pointing at the
// file stored on disk.
type GeneratedImage struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"index:idx_generated_images_user_id;not null"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Prompt    string `gorm:"type:text;not null"`
	FilePath  string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// NewSchemaGeneratedImage converts a domain generated image to its schema form.
func NewSchemaGeneratedImage(g *genimage.GeneratedImage) *GeneratedImage {
	if g == nil {
		return nil
	}

	return &GeneratedImage{
		ID:        g.ID,
		UserID:    g.UserID,
		Prompt:    g.Prompt,
		FilePath:  g.FilePath,
		CreatedAt: g.CreatedAt,
	}
}

// EtoD converts the schema form back to the domain representation.
func (g *GeneratedImage) EtoD() *genimage.GeneratedImage {
	if g == nil {
		return nil
	}

	return &genimage.GeneratedImage{
		ID:        g.ID,
		UserID:    g.UserID,
		Prompt:    g.Prompt,
		FilePath:  g.FilePath,
		CreatedAt: g.CreatedAt,
	}
}
