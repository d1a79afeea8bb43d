package entities

import (
	"time"

	"gorm.io/gorm"

	"github.com/langliu/budgie/pkg/file"
)

// Tag is a curation label for albums ("日系", "泳装", ...). Name is unique.
type Tag struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = file.NewID()
	}
	return nil
}
