package entities

import (
	"time"

	"gorm.io/gorm"

	"github.com/langliu/budgie/pkg/file"
)

// Model is a person featured in albums.
type Model struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Alias        string    `gorm:"type:varchar(255)" json:"alias,omitempty"`
	AvatarURL    string    `gorm:"type:varchar(500)" json:"avatarUrl,omitempty"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	HomepageURL  string    `gorm:"type:varchar(500)" json:"homepageUrl,omitempty"`
	InstagramURL string    `gorm:"type:varchar(500)" json:"instagramUrl,omitempty"`
	WeiboURL     string    `gorm:"type:varchar(500)" json:"weiboUrl,omitempty"`
	XURL         string    `gorm:"column:x_url;type:varchar(500)" json:"xUrl,omitempty"`
	YoutubeURL   string    `gorm:"type:varchar(500)" json:"youtubeUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Albums []Album `gorm:"many2many:album_models;joinForeignKey:ModelID;joinReferences:AlbumID" json:"-"`
}

func (Model) TableName() string {
	return "models"
}

func (m *Model) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = file.NewID()
	}
	return nil
}
