// Package setting provides read and upsert operations for key/value settings.
package setting

import (
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clinicdesk/clinicdesk/internal/db/models"
)

const (
	// KeyAppointmentPhone is the phone number shown on the booking site.
	KeyAppointmentPhone = "appointment_phone"
	// DefaultAppointmentPhone is seeded when no phone number was stored yet.
	DefaultAppointmentPhone = "9420044076"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to write a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// keyColumn is quoted by gorm, key is reserved in mysql.
var keyColumn = []clause.Column{{Name: "key"}} //nolint:gochecknoglobals

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var s models.Setting
	result := db.Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// GetAll returns every setting as a key to value map.
func GetAll(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Find(&settings).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out, nil
}

// Set creates or replaces a setting in a single statement.
func Set(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	return db.Clauses(clause.OnConflict{
		Columns:   keyColumn,
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

// SetMany upserts every entry on its own, in key order.
// It stops at the first failure; entries written before it stay written.
func SetMany(db *gorm.DB, values map[string]string) error {
	if db == nil {
		return ErrDBNil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := Set(db, k, values[k]); err != nil {
			return err
		}
	}

	return nil
}

// Seed stores value under key unless the key already exists.
func Seed(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	return db.Clauses(clause.OnConflict{
		Columns:   keyColumn,
		DoNothing: true,
	}).Create(&models.Setting{Key: key, Value: value}).Error
}
