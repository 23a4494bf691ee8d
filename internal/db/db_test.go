package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinicdesk/internal/config"
	"github.com/clinicdesk/clinicdesk/internal/db/models"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{
		DB: config.DB{
			GormEngine: config.EngineSQLite,
			Path:       filepath.Join(t.TempDir(), "appointments.db"),
		},
	}

	db, err := Open(cfg)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Appointment{}))
	assert.True(t, db.Migrator().HasTable(&models.Setting{}))

	// migrating twice is harmless
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestDialector(t *testing.T) {
	for _, engine := range []string{config.EngineSQLite, config.EngineMySQL, config.EnginePostgres} {
		d, err := Dialector(&config.Config{DB: config.DB{GormEngine: engine, Path: "x.db"}})
		require.NoError(t, err)
		assert.Equal(t, engine, d.Name())
	}

	_, err := Dialector(&config.Config{DB: config.DB{GormEngine: "oracle"}})
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)
}
