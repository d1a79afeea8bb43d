package entities

import (
	"time"

	"gorm.io/gorm"

	"github.com/langliu/budgie/pkg/file"
)

// ShortVideo is a re-hosted copy of a third-party short video. OriginalURL
// is the dedup key: one share link maps to at most one row.
type ShortVideo struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	OriginalURL string    `gorm:"column:original_url;type:varchar(500);not null;uniqueIndex" json:"originalUrl"`
	R2Key       string    `gorm:"column:r2_key;type:varchar(500);not null" json:"r2Key"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Topics []Topic `gorm:"many2many:short_video_to_topic;joinForeignKey:VideoID;joinReferences:TopicID" json:"topics"`
}

func (ShortVideo) TableName() string {
	return "short_video"
}

func (v *ShortVideo) BeforeCreate(*gorm.DB) error {
	if v.ID == "" {
		v.ID = file.NewID()
	}
	return nil
}

// Topic is a deduplicated hashtag label extracted from video descriptions.
type Topic struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Topic) TableName() string {
	return "short_video_topic"
}

func (t *Topic) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = file.NewID()
	}
	return nil
}

// ShortVideoToTopic joins videos and topics. Rows are written once at
// ingestion time and never updated.
type ShortVideoToTopic struct {
	VideoID   string    `gorm:"column:video_id;type:uuid;primaryKey" json:"videoId"`
	TopicID   string    `gorm:"column:topic_id;type:uuid;primaryKey" json:"topicId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ShortVideoToTopic) TableName() string {
	return "short_video_to_topic"
}
