package system

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func sysLog() *zerolog.Logger {
	l := log.With().Str("module", "system").Logger()
	return &l
}
