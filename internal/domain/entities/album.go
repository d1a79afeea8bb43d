package entities

import (
	"time"

	"gorm.io/gorm"

	"github.com/langliu/budgie/pkg/file"
)

// Album is a curated photo set, linked to models and tags through join
// tables and owning an ordered list of images.
type Album struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	CoverImageURL string     `gorm:"type:varchar(500)" json:"coverImageUrl,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Models []Model      `gorm:"many2many:album_models;joinForeignKey:AlbumID;joinReferences:ModelID" json:"models,omitempty"`
	Tags   []Tag        `gorm:"many2many:album_tags;joinForeignKey:AlbumID;joinReferences:TagID" json:"tags,omitempty"`
	Images []AlbumImage `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (Album) TableName() string {
	return "albums"
}

func (a *Album) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = file.NewID()
	}
	return nil
}

// AlbumImage is one picture inside an album. Key is the bucket object key,
// kept so the object can be deleted together with the row.
type AlbumImage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	AlbumID   string    `gorm:"type:uuid;not null;index" json:"albumId"`
	Key       string    `gorm:"type:varchar(500);not null" json:"key"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	Caption   string    `gorm:"type:varchar(500)" json:"caption,omitempty"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
	FileSize  int64     `json:"fileSize,omitempty"`
	SortOrder int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AlbumImage) TableName() string {
	return "album_images"
}

func (i *AlbumImage) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = file.NewID()
	}
	return nil
}

// AlbumModel joins albums and models.
type AlbumModel struct {
	AlbumID   string    `gorm:"type:uuid;primaryKey" json:"albumId"`
	ModelID   string    `gorm:"type:uuid;primaryKey" json:"modelId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AlbumModel) TableName() string {
	return "album_models"
}

// AlbumTag joins albums and tags.
type AlbumTag struct {
	AlbumID   string    `gorm:"type:uuid;primaryKey" json:"albumId"`
	TagID     string    `gorm:"type:uuid;primaryKey" json:"tagId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AlbumTag) TableName() string {
	return "album_tags"
}
