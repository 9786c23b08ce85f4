package test

import (
	"txkv/observability"

	"github.com/rs/zerolog"
)

func DisableLogging() {
	observability.SetLoggingLevel(zerolog.Disabled)
}
