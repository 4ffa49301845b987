package utils

import (
	"github.com/urfave/cli"
)

var (
	/* Required Flags */
	ConfigFileFlag = cli.StringFlag{
		Name:     "config",
		Required: false,
		Usage:    "Load configuration from `FILE`",
		EnvVar:   "MARKET_CONFIG_PATH",
	}

	/* Optional Flags */
	EnvFileFlag = cli.StringFlag{
		Name:   "env-file",
		Usage:  "Load environment overrides from `FILE` when it exists",
		Value:  ".env",
		EnvVar: "MARKET_ENV_FILE",
	}
)

var requiredFlags = []cli.Flag{
	ConfigFileFlag,
}

var optionalFlags = []cli.Flag{
	EnvFileFlag,
}

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

// Flags contains the list of configuration options available to the binary.
var Flags []cli.Flag
