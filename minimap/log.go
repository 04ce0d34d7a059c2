package minimap

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// mmLog derives from the global logger on each call so output configured in
// main after package init still applies.
func mmLog() *zerolog.Logger {
	l := log.With().Str("module", "minimap").Logger()
	return &l
}
