// Command pagedlist drives a paginated list controller through a text
// viewport, rendering one frame per state change.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("pagedlist failed")
		os.Exit(1)
	}
}
