package marketplace

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/contracts/cw20"
	"github.com/alt-research/cw-nft-market/market/contracts/cw721"
	"github.com/alt-research/cw-nft-market/market/types"
)

// ListForSale approves the marketplace for the nft and creates the sale in
// one tx.
func (m *Marketplace) ListForSale(ctx context.Context, msg SwapMsg) (*cwclient.TxResponse, error) {
	if msg.SwapType == "" {
		msg.SwapType = Sale
	}
	if msg.SwapType != Sale {
		return nil, errorsmod.Wrapf(types.ErrInvalidSwapType, "list for sale with %s", msg.SwapType)
	}
	if err := msg.Validate(m.prefix); err != nil {
		return nil, err
	}

	res, err := m.client.ExecuteMulti(ctx, "list "+msg.Id,
		cw721Request(msg.Cw721, cw721.NewApproveMsg(m.Address(), msg.TokenId, nil)),
		cwclient.ExecuteRequest{Msg: NewCreateMsg(msg)},
	)
	if err != nil {
		return res, errors.Wrapf(err, "failed to list %s for sale", msg.Id)
	}

	return res, nil
}

// MakeOffer allows the marketplace to take the price from the sender cw20
// balance and creates the offer in one tx. Offers in the native denom are
// not escrowed by the marketplace so they are rejected.
func (m *Marketplace) MakeOffer(ctx context.Context, msg SwapMsg) (*cwclient.TxResponse, error) {
	if msg.SwapType == "" {
		msg.SwapType = Offer
	}
	if msg.SwapType != Offer {
		return nil, errorsmod.Wrapf(types.ErrInvalidSwapType, "make offer with %s", msg.SwapType)
	}
	if msg.PaymentToken == nil || *msg.PaymentToken == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidFunds, "offers need a cw20 payment token")
	}
	if err := msg.Validate(m.prefix); err != nil {
		return nil, err
	}

	res, err := m.client.ExecuteMulti(ctx, "offer "+msg.Id,
		cw20Request(*msg.PaymentToken, cw20.NewIncreaseAllowanceMsg(m.Address(), msg.Price, nil)),
		cwclient.ExecuteRequest{Msg: NewCreateMsg(msg)},
	)
	if err != nil {
		return res, errors.Wrapf(err, "failed to make offer %s", msg.Id)
	}

	return res, nil
}

// Buy fills the sale id. A native sale is paid by attaching price of the
// config denom, a cw20 sale by an allowance given in the same tx.
func (m *Marketplace) Buy(ctx context.Context, id string) (*cwclient.TxResponse, error) {
	swap, err := m.Details(ctx, id)
	if err != nil {
		return nil, err
	}
	if swap.SwapType != Sale {
		return nil, errorsmod.Wrapf(types.ErrInvalidSwapType, "swap %s is an %s", id, swap.SwapType)
	}

	var reqs []cwclient.ExecuteRequest
	if swap.IsCw20Payment() {
		reqs = append(reqs,
			cw20Request(*swap.PaymentToken, cw20.NewIncreaseAllowanceMsg(m.Address(), swap.Price, nil)),
			cwclient.ExecuteRequest{Msg: NewFinishMsg(id)},
		)
	} else {
		cfg, err := m.Config(ctx)
		if err != nil {
			return nil, err
		}
		if err := sdk.ValidateDenom(cfg.Denom); err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidFunds, "config denom %q: %v", cfg.Denom, err)
		}

		reqs = append(reqs, cwclient.ExecuteRequest{
			Msg:   NewFinishMsg(id),
			Funds: sdk.NewCoins(sdk.NewCoin(cfg.Denom, swap.Price.Int)),
		})
	}

	res, err := m.client.ExecuteMulti(ctx, "buy "+id, reqs...)
	if err != nil {
		return res, errors.Wrapf(err, "failed to buy %s", id)
	}

	return res, nil
}

// AcceptOffer approves the marketplace for the nft of the offer id and
// fills it in one tx.
func (m *Marketplace) AcceptOffer(ctx context.Context, id string) (*cwclient.TxResponse, error) {
	swap, err := m.Details(ctx, id)
	if err != nil {
		return nil, err
	}
	if swap.SwapType != Offer {
		return nil, errorsmod.Wrapf(types.ErrInvalidSwapType, "swap %s is a %s", id, swap.SwapType)
	}

	res, err := m.client.ExecuteMulti(ctx, "accept "+id,
		cw721Request(swap.NftContract, cw721.NewApproveMsg(m.Address(), swap.TokenId, nil)),
		cwclient.ExecuteRequest{Msg: NewFinishMsg(id)},
	)
	if err != nil {
		return res, errors.Wrapf(err, "failed to accept offer %s", id)
	}

	return res, nil
}
