package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/entities"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// A concurrent ingest can commit a brand-new topic between our lookup and
// insert. The insert then hits the unique index; the transaction must
// survive it and settle on the committed row instead of failing.
func TestCreateWithTopics_LostTopicRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShortVideoRepository(db)

	mock.ExpectBegin()

	// Lookup sees nothing: the competing transaction has not committed yet.
	mock.ExpectQuery(`SELECT (.+) FROM "short_video_topic" WHERE description = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "created_at"}))

	// By insert time the competitor has won the index; DO NOTHING inserts
	// zero rows and keeps the transaction alive.
	mock.ExpectExec(`INSERT INTO "short_video_topic" (.+) ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Re-read picks up the committed winner.
	mock.ExpectQuery(`SELECT (.+) FROM "short_video_topic" WHERE description = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "created_at"}).
			AddRow("topic-1", "fun", time.Now()))

	mock.ExpectExec(`INSERT INTO "short_video"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// The join row must reference the winner's id.
	mock.ExpectExec(`INSERT INTO "short_video_to_topic"`).
		WithArgs("video-1", "topic-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	video := &entities.ShortVideo{
		ID:          "video-1",
		Name:        "clip",
		OriginalURL: "https://v.example.com/share/abc",
		R2Key:       "short-videos/1-video-1.mp4",
	}
	err := repo.CreateWithTopics(context.Background(), video, []string{"fun"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithTopics_ExistingTopicIsReused(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShortVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "short_video_topic" WHERE description = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "created_at"}).
			AddRow("topic-1", "fun", time.Now()))
	mock.ExpectExec(`INSERT INTO "short_video"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "short_video_to_topic"`).
		WithArgs("video-1", "topic-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	video := &entities.ShortVideo{
		ID:          "video-1",
		Name:        "clip",
		OriginalURL: "https://v.example.com/share/abc",
		R2Key:       "short-videos/1-video-1.mp4",
	}
	err := repo.CreateWithTopics(context.Background(), video, []string{"fun"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
