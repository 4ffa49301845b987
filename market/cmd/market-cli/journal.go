package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/alt-research/cw-nft-market/market/client/journal"
)

var journalCommand = cli.Command{
	Name:  "journal",
	Usage: "Inspect the local journal of the sent txs",
	Subcommands: []cli.Command{
		{
			Name:   "list",
			Usage:  "List the latest txs, newest first",
			Flags:  []cli.Flag{limitFlag},
			Action: journalList,
		},
	},
}

func journalList(cliCtx *cli.Context) error {
	config, err := readConfig(cliCtx)
	if err != nil {
		return err
	}
	if config.Journal.Path == "" {
		return errors.New("journal is disabled, set journal.path in the config")
	}

	j, err := journal.Open(config.Journal.Path, config.Journal.Timeout)
	if err != nil {
		return err
	}
	defer j.Close()

	limit := int(cliCtx.Uint(limitFlag.Name))
	if limit == 0 {
		limit = 20
	}

	records, err := j.List(limit)
	if err != nil {
		return err
	}

	return printJson(records)
}
