package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/alt-research/cw-nft-market/market/contracts/marketplace"
	"github.com/alt-research/cw-nft-market/market/sdk/client"
	"github.com/alt-research/cw-nft-market/market/types"
)

var (
	paymentTokenFlag = cli.StringFlag{
		Name:  "payment-token",
		Usage: "The cw20 `ADDRESS` paying the swap, the native denom if empty",
	}
	noApproveFlag = cli.BoolFlag{
		Name:  "no-approve",
		Usage: "Only send the create msg, the approval or allowance was given before",
	}
)

var marketCommand = cli.Command{
	Name:  "market",
	Usage: "Query and trade on the marketplace",
	Subcommands: []cli.Command{
		{
			Name:   "list",
			Usage:  "List the swap ids",
			Flags:  []cli.Flag{startAfterFlag, limitFlag},
			Action: marketList,
		},
		{
			Name:      "details",
			Usage:     "Show a swap",
			ArgsUsage: "<id>",
			Action:    marketDetails,
		},
		{
			Name:   "listings",
			Usage:  "Page the sales",
			Flags:  []cli.Flag{pageFlag, limitFlag},
			Action: marketListings,
		},
		{
			Name:   "offers",
			Usage:  "Page the offers",
			Flags:  []cli.Flag{pageFlag, limitFlag},
			Action: marketOffers,
		},
		{
			Name:      "swaps-of",
			Usage:     "Page the swaps created by an address",
			ArgsUsage: "<address>",
			Flags:     []cli.Flag{swapTypeFlag, cw721Flag, pageFlag, limitFlag},
			Action:    marketSwapsOf,
		},
		{
			Name:   "total",
			Usage:  "Count the swaps",
			Flags:  []cli.Flag{swapTypeFlag},
			Action: marketTotal,
		},
		{
			Name:   "config",
			Usage:  "Show the marketplace config",
			Action: marketConfig,
		},
		{
			Name:      "create",
			Usage:     "Create a sale, approving the nft, or an offer, allowing the cw20 price",
			ArgsUsage: "<id> <token_id> <price>",
			Flags: []cli.Flag{
				swapTypeFlag, cw721Flag, paymentTokenFlag, noApproveFlag,
				expiresHeightFlag, expiresTimeFlag,
			},
			Action: marketCreate,
		},
		{
			Name:      "buy",
			Usage:     "Buy a sale paying its price",
			ArgsUsage: "<id>",
			Action:    marketBuy,
		},
		{
			Name:      "cancel",
			Usage:     "Cancel a swap created by the sender",
			ArgsUsage: "<id>",
			Action:    marketCancel,
		},
		{
			Name:      "update",
			Usage:     "Update the price and expiration of a swap",
			ArgsUsage: "<id> <price>",
			Flags:     []cli.Flag{expiresHeightFlag, expiresTimeFlag},
			Action:    marketUpdate,
		},
		{
			Name:      "accept",
			Usage:     "Accept an offer for an nft of the sender",
			ArgsUsage: "<id>",
			Action:    marketAccept,
		},
	},
}

func swapFilter(cliCtx *cli.Context) (marketplace.SwapFilter, error) {
	var swapType marketplace.SwapType
	if s := cliCtx.String(swapTypeFlag.Name); s != "" {
		st, err := marketplace.ParseSwapType(s)
		if err != nil {
			return marketplace.SwapFilter{}, err
		}
		swapType = st
	}

	return marketplace.NewSwapFilter(swapType, cliCtx.String(cw721Flag.Name)), nil
}

func marketList(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().List(ctx, cliCtx.String(startAfterFlag.Name), uint32(cliCtx.Uint(limitFlag.Name)))
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketDetails(cliCtx *cli.Context) error {
	id, err := arg(cliCtx, 0, "id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().Details(ctx, id)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketListings(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().GetListings(ctx, pageParams(cliCtx))
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketOffers(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().GetOffers(ctx, pageParams(cliCtx))
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketSwapsOf(cliCtx *cli.Context) error {
	address, err := arg(cliCtx, 0, "address")
	if err != nil {
		return err
	}
	filter, err := swapFilter(cliCtx)
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().SwapsOf(ctx, address, filter, pageParams(cliCtx))
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketTotal(cliCtx *cli.Context) error {
	filter, err := swapFilter(cliCtx)
	if err != nil {
		return err
	}

	var swapType marketplace.SwapType
	if filter.SwapType != nil {
		swapType = *filter.SwapType
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		total, err := c.Marketplace().GetTotal(ctx, swapType)
		if err != nil {
			return err
		}
		return printJson(map[string]uint64{"total": total})
	})
}

func marketConfig(cliCtx *cli.Context) error {
	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().Config(ctx)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketCreate(cliCtx *cli.Context) error {
	id, err := arg(cliCtx, 0, "id")
	if err != nil {
		return err
	}
	tokenId, err := arg(cliCtx, 1, "token_id")
	if err != nil {
		return err
	}
	priceStr, err := arg(cliCtx, 2, "price")
	if err != nil {
		return err
	}
	price, err := types.ParseUint128(priceStr)
	if err != nil {
		return err
	}
	expires, err := parseExpiration(cliCtx)
	if err != nil {
		return err
	}

	swapType := marketplace.Sale
	if s := cliCtx.String(swapTypeFlag.Name); s != "" {
		if swapType, err = marketplace.ParseSwapType(s); err != nil {
			return err
		}
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		cw721 := cliCtx.String(cw721Flag.Name)
		if cw721 == "" {
			cw721 = c.Collection().Address()
		}

		msg := marketplace.SwapMsg{
			Id:           id,
			Cw721:        cw721,
			PaymentToken: types.OptionalString(cliCtx.String(paymentTokenFlag.Name)),
			TokenId:      tokenId,
			Expires:      expires,
			Price:        price,
			SwapType:     swapType,
		}

		m := c.Marketplace()
		var res any
		switch {
		case cliCtx.Bool(noApproveFlag.Name):
			res, err = m.Create(ctx, msg)
		case swapType == marketplace.Sale:
			res, err = m.ListForSale(ctx, msg)
		default:
			res, err = m.MakeOffer(ctx, msg)
		}
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketBuy(cliCtx *cli.Context) error {
	id, err := arg(cliCtx, 0, "id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().Buy(ctx, id)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketCancel(cliCtx *cli.Context) error {
	id, err := arg(cliCtx, 0, "id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().Cancel(ctx, id)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketUpdate(cliCtx *cli.Context) error {
	id, err := arg(cliCtx, 0, "id")
	if err != nil {
		return err
	}
	priceStr, err := arg(cliCtx, 1, "price")
	if err != nil {
		return err
	}
	price, err := types.ParseUint128(priceStr)
	if err != nil {
		return err
	}
	expires, err := parseExpiration(cliCtx)
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().Update(ctx, id, expires, price)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}

func marketAccept(cliCtx *cli.Context) error {
	id, err := arg(cliCtx, 0, "id")
	if err != nil {
		return err
	}

	return withClient(cliCtx, func(ctx context.Context, c *client.SdkClient) error {
		res, err := c.Marketplace().AcceptOffer(ctx, id)
		if err != nil {
			return err
		}
		return printJson(res)
	})
}
