package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/pkg/file"
)

// InMemoryShortVideoRepository mirrors the gorm repository's semantics for
// tests: unique original_url, deduplicated topics, all-or-nothing writes.
type InMemoryShortVideoRepository struct {
	mu     sync.RWMutex
	videos map[string]*entities.ShortVideo // by id
	byURL  map[string]string               // original url -> video id
	topics map[string]*entities.Topic      // by description
	links  map[string][]string             // video id -> topic ids, insert order
}

func NewInMemoryShortVideoRepository() *InMemoryShortVideoRepository {
	return &InMemoryShortVideoRepository{
		videos: make(map[string]*entities.ShortVideo),
		byURL:  make(map[string]string),
		topics: make(map[string]*entities.Topic),
		links:  make(map[string][]string),
	}
}

func (r *InMemoryShortVideoRepository) FindByOriginalURL(_ context.Context, originalURL string) (*entities.ShortVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byURL[originalURL]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withTopics(r.videos[id]), nil
}

func (r *InMemoryShortVideoRepository) FindByID(_ context.Context, id string) (*entities.ShortVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	video, ok := r.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withTopics(video), nil
}

func (r *InMemoryShortVideoRepository) CreateWithTopics(_ context.Context, video *entities.ShortVideo, tags []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byURL[video.OriginalURL]; exists {
		return gorm.ErrDuplicatedKey
	}

	if video.ID == "" {
		video.ID = file.NewID()
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now

	seen := make(map[string]bool, len(tags))
	var topicIDs []string
	for _, tag := range tags {
		topic, ok := r.topics[tag]
		if !ok {
			topic = &entities.Topic{ID: file.NewID(), Description: tag, CreatedAt: now}
			r.topics[tag] = topic
		}
		if !seen[topic.ID] {
			seen[topic.ID] = true
			topicIDs = append(topicIDs, topic.ID)
		}
	}

	stored := *video
	stored.Topics = nil
	r.videos[stored.ID] = &stored
	r.byURL[stored.OriginalURL] = stored.ID
	r.links[stored.ID] = topicIDs
	return nil
}

func (r *InMemoryShortVideoRepository) List(_ context.Context) ([]entities.ShortVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	videos := make([]entities.ShortVideo, 0, len(r.videos))
	for _, video := range r.videos {
		videos = append(videos, *r.withTopics(video))
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
	return videos, nil
}

func (r *InMemoryShortVideoRepository) AllKeys(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.videos))
	for _, video := range r.videos {
		keys = append(keys, video.R2Key)
	}
	return keys, nil
}

// TopicCount reports how many distinct topic rows exist. Test helper.
func (r *InMemoryShortVideoRepository) TopicCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics)
}

// VideoCount reports how many video rows exist. Test helper.
func (r *InMemoryShortVideoRepository) VideoCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.videos)
}

func (r *InMemoryShortVideoRepository) withTopics(video *entities.ShortVideo) *entities.ShortVideo {
	out := *video
	out.Topics = nil
	byID := make(map[string]*entities.Topic, len(r.topics))
	for _, topic := range r.topics {
		byID[topic.ID] = topic
	}
	for _, topicID := range r.links[video.ID] {
		if topic, ok := byID[topicID]; ok {
			out.Topics = append(out.Topics, *topic)
		}
	}
	return &out
}
