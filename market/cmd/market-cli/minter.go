package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/alt-research/cw-nft-market/market/sdk/client"
)

var minterCommand = cli.Command{
	Name:  "minter",
	Usage: "Mint from the whitelist minter",
	Subcommands: []cli.Command{
		{
			Name:   "config",
			Usage:  "Show the minter config",
			Action: minterConfig,
		},
		{
			Name:      "whitelisted",
			Usage:     "Check if an address is whitelisted",
			ArgsUsage: "<address>",
			Action:    minterWhitelisted,
		},
		{
			Name:   "mint",
			Usage:  "Mint a token paying the configured price",
			Action: minterMint,
		},
		{
			Name:      "reveal",
			Usage:     "Reveal the metadata of a minted token",
			ArgsUsage: "<token_id>",
			Action:    minterReveal,
		},
		{
			Name:      "whitelist-add",
			Usage:     "Add addresses to the whitelist",
			ArgsUsage: "<address>...",
			Action:    minterWhitelistAdd,
		},
		{
			Name:      "whitelist-remove",
			Usage:     "Remove addresses from the whitelist",
			ArgsUsage: "<address>...",
			Action:    minterWhitelistRemove,
		},
	},
}

func minterConfig(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Minter().Config(ctx)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func minterWhitelisted(cliCtx *cli.Context) error {
	address, err := arg(cliCtx, 0, "address")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		ok, err := c.Minter().IsWhitelisted(ctx, address)
		if err != nil {
			return err
		}
		return printJson(map[string]any{"address": address, "whitelisted": ok})
	})
}

func minterMint(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		tokenId, res, err := c.Minter().MintWithPrice(ctx)
		if err != nil {
			return err
		}
		return printJson(map[string]any{"token_id": tokenId, "tx": res})
	})
}

func minterReveal(cliCtx *cli.Context) error {
	tokenId, err := arg(cliCtx, 0, "token_id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Minter().Reveal(ctx, tokenId)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func minterWhitelistAdd(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Minter().AddToWhitelist(ctx, cliCtx.Args())
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func minterWhitelistRemove(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Minter().RemoveFromWhitelist(ctx, cliCtx.Args())
		if err != nil {
			return err
		}
		return printJson(res)
	})
}
