// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/clinicdesk/clinicdesk/internal/config"
)

const (
	sqliteDefaultExtras = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	mysqlDefaultExtras  = "charset=utf8mb4&parseTime=True&loc=UTC"
	postgresDefaultPort = 5432
	mysqlDefaultPort    = 3306
)

// Create builds the Data Source Name for the configured gorm engine.
func Create(cfg *config.Config) string {
	db := cfg.DB

	switch db.GormEngine {
	case config.EngineMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			db.User,
			db.Password,
			db.Host,
			portOrDefault(db.Port, mysqlDefaultPort),
			db.Name,
			extrasOrDefault(db.Extras, mysqlDefaultExtras),
		)
	case config.EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			db.Host,
			portOrDefault(db.Port, postgresDefaultPort),
			db.User,
			db.Password,
			db.Name,
		)
		if db.Extras != "" {
			out += " " + db.Extras
		}

		return out
	default:
		sep := "?"
		if strings.Contains(db.Path, "?") {
			sep = "&"
		}

		return db.Path + sep + extrasOrDefault(db.Extras, sqliteDefaultExtras)
	}
}

func portOrDefault(port, def int) int {
	if port == 0 {
		return def
	}

	return port
}

func extrasOrDefault(extras, def string) string {
	if extras == "" {
		return def
	}

	return extras
}
