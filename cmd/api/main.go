package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"obrail.europe.org/internal/app"
	"obrail.europe.org/internal/appconf"
	"obrail.europe.org/internal/logging"
	"obrail.europe.org/internal/restapi"
	"obrail.europe.org/martdb"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "Path to a YAML config file")
	port := pflag.IntP("port", "p", 0, "API server port")
	env := pflag.StringP("env", "e", "", "Environment (development|test|production)")
	dbPath := pflag.String("db-path", "", "Path to the mart SQLite database")
	rateLimit := pflag.Int("rate-limit", -1, "Requests/second per client (0 disables)")
	pflag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	cfg, err := loadConfig(*configPath, *port, *env, *dbPath, *rateLimit)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	client, err := martdb.NewClient(martdb.NewConfig(cfg.DBPath, cfg.Env))
	if err != nil {
		logger.Error("failed to open mart database", "error", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(client, logger, "mart_database")

	application := &app.Application{
		Config: cfg,
		Logger: logger,
		MartDB: client,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String(), "db", cfg.DBPath)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

// loadConfig layers the optional config file over the defaults, then applies
// flag overrides and validates the result.
func loadConfig(configPath string, port int, env, dbPath string, rateLimit int) (appconf.Config, error) {
	cfg := appconf.Default()
	if configPath != "" {
		loaded, err := appconf.LoadFile(configPath)
		if err != nil {
			return appconf.Config{}, err
		}
		cfg = loaded
	}

	if port != 0 {
		cfg.Port = port
	}
	if env != "" {
		cfg.EnvName = env
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if rateLimit >= 0 {
		cfg.RateLimit = rateLimit
	}

	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, err
	}
	return cfg, nil
}
