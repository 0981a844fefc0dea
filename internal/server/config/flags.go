package config

import (
	"flag"
	"os"

	"github.com/cghdev/userdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port to listen on (default from Config)
//	-d string   PostgreSQL connection string
//
// Note: os.Args is filtered to the flags handled here, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to listen on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "PostgreSQL connection string")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
