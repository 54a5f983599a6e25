package martdb

import "obrail.europe.org/internal/appconf"

// Config holds configuration options for the Client
type Config struct {
	DBPath string // Path to SQLite database file
	Env    appconf.Environment
}

func NewConfig(dbPath string, env appconf.Environment) Config {
	return Config{
		DBPath: dbPath,
		Env:    env,
	}
}
