package marketplace

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/types"
)

// Create creates the swap alone, the nft approval or cw20 allowance must be
// given before. See ListForSale and MakeOffer.
func (m *Marketplace) Create(ctx context.Context, msg SwapMsg) (*cwclient.TxResponse, error) {
	if err := msg.Validate(m.prefix); err != nil {
		return nil, err
	}

	res, err := m.client.Execute(ctx, NewCreateMsg(msg), nil)
	if err != nil {
		return res, errors.Wrapf(err, "failed to create swap %s", msg.Id)
	}

	return res, nil
}

// Finish fills the swap, funds is the native price of a sale.
func (m *Marketplace) Finish(ctx context.Context, id string, funds sdk.Coins) (*cwclient.TxResponse, error) {
	if id == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "swap id")
	}

	res, err := m.client.Execute(ctx, NewFinishMsg(id), funds)
	if err != nil {
		return res, errors.Wrapf(err, "failed to finish swap %s", id)
	}

	return res, nil
}

func (m *Marketplace) Cancel(ctx context.Context, id string) (*cwclient.TxResponse, error) {
	if id == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "swap id")
	}

	res, err := m.client.Execute(ctx, NewCancelMsg(id), nil)
	if err != nil {
		return res, errors.Wrapf(err, "failed to cancel swap %s", id)
	}

	return res, nil
}

func (m *Marketplace) Update(
	ctx context.Context,
	id string,
	expires types.Expiration,
	price types.Uint128,
) (*cwclient.TxResponse, error) {
	if id == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "swap id")
	}
	if err := expires.Validate(); err != nil {
		return nil, err
	}
	if err := types.ValidatePrice(price); err != nil {
		return nil, err
	}

	res, err := m.client.Execute(ctx, NewUpdateMsg(id, expires, price), nil)
	if err != nil {
		return res, errors.Wrapf(err, "failed to update swap %s", id)
	}

	return res, nil
}

// UpdateConfig replaces the config, only the admin can send it.
func (m *Marketplace) UpdateConfig(ctx context.Context, cfg Config) (*cwclient.TxResponse, error) {
	if err := types.ValidateAddress(cfg.Admin, m.prefix); err != nil {
		return nil, errorsmod.Wrap(err, "admin")
	}
	if err := sdk.ValidateDenom(cfg.Denom); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidFunds, "%s: %v", cfg.Denom, err)
	}
	for _, addr := range cfg.Cw721 {
		if err := types.ValidateAddress(addr, m.prefix); err != nil {
			return nil, errorsmod.Wrap(err, "cw721")
		}
	}
	if cfg.FeePercentage > 100 {
		return nil, errorsmod.Wrapf(types.ErrInvalidPrice, "fee percentage %d above 100", cfg.FeePercentage)
	}

	res, err := m.client.Execute(ctx, NewUpdateConfigMsg(cfg), nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to update config")
	}

	return res, nil
}

// Withdraw sends collected fees to the admin, in denom or in paymentToken
// when it is set.
func (m *Marketplace) Withdraw(
	ctx context.Context,
	amount types.Uint128,
	denom string,
	paymentToken string,
) (*cwclient.TxResponse, error) {
	if err := types.ValidatePrice(amount); err != nil {
		return nil, err
	}
	if paymentToken != "" {
		if err := types.ValidateAddress(paymentToken, m.prefix); err != nil {
			return nil, errorsmod.Wrap(err, "payment token")
		}
	}

	res, err := m.client.Execute(ctx, NewWithdrawMsg(amount, denom, types.OptionalString(paymentToken)), nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to withdraw")
	}

	return res, nil
}
