package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/db/dbtest"
	"github.com/clinicdesk/clinicdesk/internal/db/models"
)

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, settings []models.Setting) {
	t.Helper()
	for _, s := range settings {
		err := db.Create(&s).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := dbtest.Open(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		key           string
		seedData      []models.Setting
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			key:           "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			dbParam:       db,
			key:           "",
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			key:           "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:    "successful get",
			dbParam: db,
			key:     KeyAppointmentPhone,
			seedData: []models.Setting{
				{Key: KeyAppointmentPhone, Value: "5550100"},
			},
			expectedValue: "5550100",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			s, err := Get(tc.dbParam, tc.key)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.key, s.Key)
			assert.Equal(t, tc.expectedValue, s.Value)
		})
	}
}

func TestGetAll(t *testing.T) {
	db := dbtest.Open(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		seedData      []models.Setting
		expectedError error
		expected      map[string]string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			expectedError: ErrDBNil,
		},
		{
			name:     "empty database",
			dbParam:  db,
			expected: map[string]string{},
		},
		{
			name:    "multiple settings",
			dbParam: db,
			seedData: []models.Setting{
				{Key: "appointment_phone", Value: "5550100"},
				{Key: "clinic_name", Value: "City Clinic"},
				{Key: "opening_hours", Value: "9-17"},
			},
			expected: map[string]string{
				"appointment_phone": "5550100",
				"clinic_name":       "City Clinic",
				"opening_hours":     "9-17",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			settings, err := GetAll(tc.dbParam)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, settings)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, settings)
		})
	}
}

func TestSet(t *testing.T) {
	db := dbtest.Open(t)

	require.ErrorIs(t, Set(nil, "a", "1"), ErrDBNil)
	require.ErrorIs(t, Set(db, "", "1"), ErrSettingKeyEmpty)

	require.NoError(t, Set(db, "a", "1"))
	require.NoError(t, Set(db, "a", "2"))

	s, err := Get(db, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", s.Value)

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(1), count, "upsert must not keep history")
}

func TestSetMany(t *testing.T) {
	db := dbtest.Open(t)

	require.ErrorIs(t, SetMany(nil, map[string]string{"a": "1"}), ErrDBNil)

	require.NoError(t, SetMany(db, map[string]string{"a": "1", "b": "x"}))
	require.NoError(t, SetMany(db, map[string]string{"a": "2"}))
	require.NoError(t, SetMany(db, map[string]string{}))

	all, err := GetAll(db)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "2", "b": "x"}, all)
}

func TestSetManyKeepsEntriesWrittenBeforeAFailure(t *testing.T) {
	db := dbtest.Open(t)

	// keys are applied in order, "" sorts first and fails straight away
	err := SetMany(db, map[string]string{"": "bad", "a": "1"})
	require.ErrorIs(t, err, ErrSettingKeyEmpty)

	all, err := GetAll(db)
	require.NoError(t, err)
	assert.Empty(t, all)

	// "zz" sorts after "a" and is rejected by the database after "a" was written
	require.NoError(t, db.Exec(`CREATE TRIGGER reject_zz BEFORE INSERT ON settings
		WHEN NEW.key = 'zz' BEGIN SELECT RAISE(ABORT, 'rejected'); END`).Error)

	err = SetMany(db, map[string]string{"a": "1", "zz": "2"})
	require.Error(t, err)

	all, err = GetAll(db)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1"}, all)
}

func TestSeed(t *testing.T) {
	db := dbtest.Open(t)

	require.ErrorIs(t, Seed(nil, KeyAppointmentPhone, DefaultAppointmentPhone), ErrDBNil)
	require.ErrorIs(t, Seed(db, "", DefaultAppointmentPhone), ErrSettingKeyEmpty)

	require.NoError(t, Seed(db, KeyAppointmentPhone, DefaultAppointmentPhone))

	s, err := Get(db, KeyAppointmentPhone)
	require.NoError(t, err)
	assert.Equal(t, DefaultAppointmentPhone, s.Value)

	// an existing value survives a later seed
	require.NoError(t, Set(db, KeyAppointmentPhone, "5550100"))
	require.NoError(t, Seed(db, KeyAppointmentPhone, DefaultAppointmentPhone))

	s, err = Get(db, KeyAppointmentPhone)
	require.NoError(t, err)
	assert.Equal(t, "5550100", s.Value)
}
