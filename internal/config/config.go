// Package config builds the process configuration from etc/main.toml,
// the environment and an optional JSON override.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvJSONOverride holds a JSON document merged over the resolved config.
	EnvJSONOverride = "CLINICDESK_CONFIG_JSON"

	configFileName = "main.toml"
	secretMask     = "********"
)

// envBindings maps config keys to the environment names used by existing deployments.
var envBindings = map[string]string{ //nolint:gochecknoglobals
	"devmode":                    "DEV_MODE",
	"db.gormengine":              "DB_ENGINE",
	"db.path":                    "DATABASE_PATH",
	"db.host":                    "DB_HOST",
	"db.port":                    "DB_PORT",
	"db.user":                    "DB_USER",
	"db.password":                "DB_PASSWORD",
	"db.name":                    "DB_NAME",
	"db.extras":                  "DB_EXTRAS",
	"log.loglevel":               "LOG_LEVEL",
	"webserver.host":             "LISTEN_HOST",
	"webserver.port":             "PORT",
	"notify.email.host":          "SMTP_HOST",
	"notify.email.port":          "SMTP_PORT",
	"notify.email.user":          "SMTP_USER",
	"notify.email.password":      "SMTP_PASS",
	"notify.email.from":          "NOTIFY_EMAIL_FROM",
	"notify.email.to":            "DOCTOR_EMAIL",
	"notify.whatsapp.accountsid": "TWILIO_ACCOUNT_SID",
	"notify.whatsapp.authtoken":  "TWILIO_AUTH_TOKEN",
	"notify.whatsapp.from":       "TWILIO_WHATSAPP_FROM",
	"notify.whatsapp.to":         "DOCTOR_WHATSAPP_TO",
	"notify.whatsapp.apibaseurl": "TWILIO_API_BASE_URL",
}

// LoadDotEnv loads variables from a .env file without overriding the real environment.
// A missing file is not an error.
func LoadDotEnv(file string) error {
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return errors.Wrap(godotenv.Load(file), "failed to load "+file)
}

// ReadConfig from config dir and environment.
// An empty path skips the config file and relies on defaults and environment only.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return Config{}, errors.Wrapf(err, "failed to bind env %s", env)
		}
	}

	if path != "" {
		v.SetConfigFile(filepath.Join(path, configFileName))

		if err = v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvJSONOverride)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "clinicdesk")
	v.SetDefault("db.gormengine", EngineSQLite)
	v.SetDefault("db.path", "appointments.db")
	v.SetDefault("webserver.port", 5000)      //nolint:mnd
	v.SetDefault("webserver.shutdowntime", 5) //nolint:mnd
	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "clinicdesk")
	v.SetDefault("log.servicename", "clinicdesk")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.disablecheckalive", true)
	v.SetDefault("notify.email.port", 587) //nolint:mnd
	v.SetDefault("notify.whatsapp.apibaseurl", "https://api.twilio.com")
	v.SetDefault("notify.whatsapp.timeout", 30*time.Second) //nolint:mnd
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvJSONOverride)
	}

	return c, nil
}

// DumpConfigJSON config as JSON String with credentials masked.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	masked := *c
	mask(&masked.DB.Password)
	mask(&masked.Notify.Email.Password)
	mask(&masked.Notify.WhatsApp.AuthToken)

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(masked); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

func mask(s *string) {
	if *s != "" {
		*s = secretMask
	}
}

// validate minimal config settings and fill derived defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineSQLite:
		if c.DB.Path == "" {
			return errors.Wrap(ErrEmptyDatabasePath, invalidErrMessage)
		}
	case EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	return nil
}
