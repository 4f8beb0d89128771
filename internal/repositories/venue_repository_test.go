package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"planmyday/internal/models/db_models"
)

func dryRunPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=planmyday dbname=planmyday sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestCandidatesQueryKeepsInsertionOrder(t *testing.T) {
	db := dryRunPostgres(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var venues []db_models.Venue
		return candidatesQuery(tx, 100).Find(&venues)
	})

	assert.Contains(t, sql, "ORDER BY seq")
	assert.Contains(t, sql, "LIMIT 100")
}

func TestVenueSchemaTracksInsertionOrder(t *testing.T) {
	db := dryRunPostgres(t)

	stmt := &gorm.Statement{DB: db}
	require.NoError(t, stmt.Parse(&db_models.Venue{}))

	field := stmt.Schema.LookUpField("Seq")
	require.NotNil(t, field)
	assert.True(t, field.AutoIncrement)
	assert.Equal(t, "seq", field.DBName)
}
