package daemon

import (
	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/db/controller/setting"
)

// seed inserts default settings that are missing. Existing values are kept.
func seed(db *gorm.DB) error {
	return setting.Seed(db, setting.KeyAppointmentPhone, setting.DefaultAppointmentPhone)
}
