package migrations

import (
	"math"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goose derives the migration version from the registering file's name, so
// the file must keep its NNN_name prefix or goose.Up refuses to start.
func TestInitMigrationIsCollectable(t *testing.T) {
	migrations, err := goose.CollectMigrations(".", 0, math.MaxInt64)
	require.NoError(t, err)
	require.Len(t, migrations, 1)

	assert.Equal(t, int64(1), migrations[0].Version)
	assert.True(t, migrations[0].Registered)
}
