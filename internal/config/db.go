package config

const (
	// EngineSQLite stores everything in a single SQLite file (default).
	EngineSQLite = "sqlite"
	// EngineMySQL connects to a MySQL or MariaDB server.
	EngineMySQL = "mysql"
	// EnginePostgres connects to a PostgreSQL server.
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	GormEngine string // sqlite, mysql or postgres
	Path       string // sqlite database file
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
}
