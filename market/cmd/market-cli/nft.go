package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/alt-research/cw-nft-market/market/sdk/client"
)

var (
	resolveFlag = cli.BoolFlag{
		Name:  "resolve",
		Usage: "Fetch the off-chain metadata of the token uri",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner",
		Usage: "Only the tokens of `ADDRESS`",
	}
)

var nftCommand = cli.Command{
	Name:  "nft",
	Usage: "Query and manage the nfts of the collection",
	Subcommands: []cli.Command{
		{
			Name:      "owner",
			Usage:     "Show the owner and approvals of a token",
			ArgsUsage: "<token_id>",
			Action:    nftOwner,
		},
		{
			Name:      "info",
			Usage:     "Show the token uri and metadata of a token",
			ArgsUsage: "<token_id>",
			Flags:     []cli.Flag{resolveFlag},
			Action:    nftInfo,
		},
		{
			Name:   "tokens",
			Usage:  "List the token ids",
			Flags:  []cli.Flag{ownerFlag, startAfterFlag, limitFlag},
			Action: nftTokens,
		},
		{
			Name:      "transfer",
			Usage:     "Transfer a token",
			ArgsUsage: "<recipient> <token_id>",
			Action:    nftTransfer,
		},
		{
			Name:      "approve",
			Usage:     "Allow a spender to transfer a token",
			ArgsUsage: "<spender> <token_id>",
			Flags:     []cli.Flag{expiresHeightFlag, expiresTimeFlag},
			Action:    nftApprove,
		},
		{
			Name:      "revoke",
			Usage:     "Revoke the approval of a spender",
			ArgsUsage: "<spender> <token_id>",
			Action:    nftRevoke,
		},
	},
}

func nftOwner(cliCtx *cli.Context) error {
	tokenId, err := arg(cliCtx, 0, "token_id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Collection().OwnerOf(ctx, tokenId, false)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func nftInfo(cliCtx *cli.Context) error {
	tokenId, err := arg(cliCtx, 0, "token_id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		if cliCtx.Bool(resolveFlag.Name) {
			res, err := c.TokenMetadata(ctx, tokenId)
			if err != nil {
				return err
			}
			return printJson(res)
		}

		res, err := c.Collection().NftInfo(ctx, tokenId)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func nftTokens(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		owner := cliCtx.String(ownerFlag.Name)
		if owner == "" {
			res, err := c.Collection().AllTokens(ctx, rangeParams(cliCtx))
			if err != nil {
				return err
			}
			return printJson(res)
		}

		res, err := c.Collection().Tokens(ctx, owner, rangeParams(cliCtx))
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func nftTransfer(cliCtx *cli.Context) error {
	recipient, err := arg(cliCtx, 0, "recipient")
	if err != nil {
		return err
	}
	tokenId, err := arg(cliCtx, 1, "token_id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Collection().TransferNft(ctx, recipient, tokenId)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func nftApprove(cliCtx *cli.Context) error {
	spender, err := arg(cliCtx, 0, "spender")
	if err != nil {
		return err
	}
	tokenId, err := arg(cliCtx, 1, "token_id")
	if err != nil {
		return err
	}
	expires, err := parseExpiration(cliCtx)
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Collection().Approve(ctx, spender, tokenId, &expires)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func nftRevoke(cliCtx *cli.Context) error {
	spender, err := arg(cliCtx, 0, "spender")
	if err != nil {
		return err
	}
	tokenId, err := arg(cliCtx, 1, "token_id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Collection().Revoke(ctx, spender, tokenId)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}
