package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/alt-research/cw-nft-market/market/client/cosmosprovider"
)

var keysCommand = cli.Command{
	Name:  "keys",
	Usage: "Manage the signing keys in the keyring",
	Subcommands: []cli.Command{
		{
			Name:      "add",
			Usage:     "Create a new key, the mnemonic is printed once",
			ArgsUsage: "<name>",
			Action:    keysAdd,
		},
		{
			Name:      "restore",
			Usage:     "Restore a key from its mnemonic",
			ArgsUsage: "<name> <mnemonic>",
			Action:    keysRestore,
		},
		{
			Name:      "show",
			Usage:     "Show the address of a key",
			ArgsUsage: "<name>",
			Action:    keysShow,
		},
		{
			Name:   "list",
			Usage:  "List the keys",
			Action: keysList,
		},
	},
}

func withKeys(cliCtx *cli.Context, fn func(keys *cosmosprovider.Keys) error) error {
	config, err := readConfig(cliCtx)
	if err != nil {
		return err
	}

	zapLogger, err := newZapLogger(config)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	// the key may not exist yet
	chainCfg := config.Chain
	chainCfg.Key = ""

	cp, err := cosmosprovider.NewCosmosProvider(ctx, &chainCfg, zapLogger)
	if err != nil {
		return errors.Wrap(err, "new provider failed")
	}

	return fn(cosmosprovider.NewKeys(cp))
}

func keysAdd(cliCtx *cli.Context) error {
	name, err := arg(cliCtx, 0, "name")
	if err != nil {
		return err
	}

	return withKeys(cliCtx, func(keys *cosmosprovider.Keys) error {
		info, err := keys.Add(name)
		if err != nil {
			return err
		}
		return printJson(info)
	})
}

func keysRestore(cliCtx *cli.Context) error {
	name, err := arg(cliCtx, 0, "name")
	if err != nil {
		return err
	}
	mnemonic, err := arg(cliCtx, 1, "mnemonic")
	if err != nil {
		return err
	}

	return withKeys(cliCtx, func(keys *cosmosprovider.Keys) error {
		info, err := keys.Restore(name, mnemonic)
		if err != nil {
			return err
		}
		return printJson(info)
	})
}

func keysShow(cliCtx *cli.Context) error {
	name, err := arg(cliCtx, 0, "name")
	if err != nil {
		return err
	}

	return withKeys(cliCtx, func(keys *cosmosprovider.Keys) error {
		info, err := keys.Show(name)
		if err != nil {
			return err
		}
		return printJson(info)
	})
}

func keysList(cliCtx *cli.Context) error {
	return withKeys(cliCtx, func(keys *cosmosprovider.Keys) error {
		list, err := keys.List()
		if err != nil {
			return err
		}
		return printJson(list)
	})
}
