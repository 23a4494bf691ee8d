package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormengine is not one of sqlite, mysql or postgres.
	ErrUnknownGormEngine = errors.New("config db.gormengine must be sqlite, mysql or postgres")

	// ErrEmptyDatabasePath error if the sqlite engine is selected without a database file.
	ErrEmptyDatabasePath = errors.New("config db.path can not be empty for the sqlite engine")
)
