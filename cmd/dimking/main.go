// SPDX-License-Identifier: MIT

// Command dimking generates Schläfli polytopes and plays headless puzzle
// sessions driven by remote text commands.
//
//	dimking generate "4 3 3" --verify
//	dimking shapes --format json
//	echo "go" | dimking play --seed 7 --shape "3 3 3"
//
// Every persistent flag can also be set through a DIMKING_* environment
// variable (DIMKING_SEED, DIMKING_LOG_LEVEL, ...) or a config file.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("dimking failed")
		os.Exit(1)
	}
}
