package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type shortVideoRepository struct {
	db *gorm.DB
}

func NewShortVideoRepository(db *gorm.DB) repositories.ShortVideoRepository {
	return &shortVideoRepository{db: db}
}

func (r *shortVideoRepository) FindByOriginalURL(ctx context.Context, originalURL string) (*entities.ShortVideo, error) {
	var video entities.ShortVideo
	err := r.db.WithContext(ctx).
		Preload("Topics").
		First(&video, "original_url = ?", originalURL).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *shortVideoRepository) FindByID(ctx context.Context, id string) (*entities.ShortVideo, error) {
	var video entities.ShortVideo
	err := r.db.WithContext(ctx).
		Preload("Topics").
		First(&video, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// CreateWithTopics runs topic lookup-or-create, the video insert and the
// join inserts in one transaction, so a failure part way through leaves no
// rows behind. The unique index on topic description makes concurrent
// ingests of a brand-new tag settle on a single topic row.
func (r *shortVideoRepository) CreateWithTopics(ctx context.Context, video *entities.ShortVideo, tags []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := make(map[string]bool, len(tags))
		topicIDs := make([]string, 0, len(tags))
		for _, tag := range tags {
			topic, err := findOrCreateTopic(tx, tag)
			if err != nil {
				return err
			}
			if !seen[topic.ID] {
				seen[topic.ID] = true
				topicIDs = append(topicIDs, topic.ID)
			}
		}

		if err := tx.Create(video).Error; err != nil {
			return err
		}

		for _, topicID := range topicIDs {
			link := entities.ShortVideoToTopic{VideoID: video.ID, TopicID: topicID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// findOrCreateTopic resolves a tag to its topic row. A concurrent ingest may
// commit the same brand-new tag between our lookup and insert; ON CONFLICT
// DO NOTHING keeps the transaction alive and the re-read picks up whichever
// row won the index.
func findOrCreateTopic(tx *gorm.DB, tag string) (*entities.Topic, error) {
	var topic entities.Topic
	err := tx.Where("description = ?", tag).First(&topic).Error
	if err == nil {
		return &topic, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := entities.Topic{Description: tag}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("description = ?", tag).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *shortVideoRepository) List(ctx context.Context) ([]entities.ShortVideo, error) {
	var videos []entities.ShortVideo
	err := r.db.WithContext(ctx).
		Preload("Topics").
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *shortVideoRepository) AllKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&entities.ShortVideo{}).
		Pluck("r2_key", &keys).Error
	return keys, err
}
