package app

import (
	"log/slog"

	"obrail.europe.org/internal/appconf"
	"obrail.europe.org/martdb"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: the configuration, a structured logger, and the mart database
// client. Handlers receive it by injection rather than reaching for globals
// so the query layer is testable against an isolated instance.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	MartDB *martdb.Client
}
