package config

import (
	"flag"
	"os"

	"github.com/svarma-dev/certfolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-dsn string     path of the local database file
//	-owner string   owner id for the admin gate
//
// The owner password deliberately has no flag so it does not end up in shell
// history; use the JSON config file to change it.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-dsn", "-owner"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.OwnerID, "owner", cfg.OwnerID, "owner id for the admin gate")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
