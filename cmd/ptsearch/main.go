// Command ptsearch is the CLI entry point for the bounded-cost search
// engine: single-instance solves, batch experiments, and results
// analysis. It is an external collaborator per spec §1 — it consumes the
// search and experiment packages' public results and never encodes a
// search-algorithm decision itself.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("ptsearch failed")
		os.Exit(1)
	}
}
