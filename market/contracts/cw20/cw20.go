package cw20

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/types"
)

// Token is the client of a cw20 token contract, used as payment token by
// the marketplace.
type Token struct {
	client cwclient.ICosmosWasmContractClient
	prefix string
}

func New(client cwclient.ICosmosWasmContractClient, prefix string) *Token {
	return &Token{
		client: client,
		prefix: prefix,
	}
}

func (t *Token) Address() string {
	return t.client.ContractAddress()
}

func (t *Token) Balance(ctx context.Context, address string) (types.Uint128, error) {
	if err := types.ValidateAddress(address, t.prefix); err != nil {
		return types.Uint128{}, err
	}

	var resp BalanceResponse
	if err := t.client.QuerySmartContractState(ctx, QueryMsg{
		Balance: &queryBalance{Address: address},
	}, &resp); err != nil {
		return types.Uint128{}, errors.Wrap(err, "failed to query cw20 balance")
	}

	return resp.Balance, nil
}

func (t *Token) TokenInfo(ctx context.Context) (*TokenInfoResponse, error) {
	var resp TokenInfoResponse
	if err := t.client.QuerySmartContractState(ctx, QueryMsg{
		TokenInfo: &queryTokenInfo{},
	}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to query cw20 token info")
	}

	return &resp, nil
}

func (t *Token) Allowance(ctx context.Context, owner, spender string) (*AllowanceResponse, error) {
	var resp AllowanceResponse
	if err := t.client.QuerySmartContractState(ctx, QueryMsg{
		Allowance: &queryAllowance{
			Owner:   owner,
			Spender: spender,
		},
	}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to query cw20 allowance")
	}

	return &resp, nil
}

func (t *Token) Transfer(ctx context.Context, recipient string, amount types.Uint128) (*cwclient.TxResponse, error) {
	if err := t.validateAmount(recipient, amount); err != nil {
		return nil, err
	}

	res, err := t.client.Execute(ctx, NewTransferMsg(recipient, amount), nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to transfer cw20")
	}

	return res, nil
}

func (t *Token) IncreaseAllowance(
	ctx context.Context,
	spender string,
	amount types.Uint128,
	expires *types.Expiration,
) (*cwclient.TxResponse, error) {
	if err := t.validateAllowance(spender, amount, expires); err != nil {
		return nil, err
	}

	res, err := t.client.Execute(ctx, NewIncreaseAllowanceMsg(spender, amount, expires), nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to increase cw20 allowance")
	}

	return res, nil
}

func (t *Token) DecreaseAllowance(
	ctx context.Context,
	spender string,
	amount types.Uint128,
	expires *types.Expiration,
) (*cwclient.TxResponse, error) {
	if err := t.validateAllowance(spender, amount, expires); err != nil {
		return nil, err
	}

	res, err := t.client.Execute(ctx, NewDecreaseAllowanceMsg(spender, amount, expires), nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to decrease cw20 allowance")
	}

	return res, nil
}

func (t *Token) validateAmount(addr string, amount types.Uint128) error {
	if err := types.ValidateAddress(addr, t.prefix); err != nil {
		return err
	}

	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidFunds, "amount must be positive")
	}

	if amount.BigInt().BitLen() > 128 {
		return errorsmod.Wrap(types.ErrInvalidFunds, "amount overflows uint128")
	}

	return nil
}

func (t *Token) validateAllowance(spender string, amount types.Uint128, expires *types.Expiration) error {
	if err := t.validateAmount(spender, amount); err != nil {
		return err
	}

	if expires != nil {
		return expires.Validate()
	}

	return nil
}
