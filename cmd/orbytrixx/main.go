// Orbytrixx is the terminal edition of the Orbytrixx studio site.
//
// Running without arguments opens the interactive site: services, about,
// careers and contact pages, with the Careers and Contact forms. The
// subcommands expose the same data and forms to scripts.
//
// Usage:
//
//	orbytrixx [command] [flags]
//
// See 'orbytrixx --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/orbytrixx/orbytrixx/internal/logging"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logging.Sync()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}
