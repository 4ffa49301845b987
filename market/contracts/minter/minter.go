package minter

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/types"
)

// EventTokenIdKey is the wasm event attribute carrying the minted token id.
const EventTokenIdKey = "token_id"

// Minter is the client of the whitelist minting contract.
type Minter struct {
	client cwclient.ICosmosWasmContractClient
	prefix string
}

func New(client cwclient.ICosmosWasmContractClient, prefix string) *Minter {
	return &Minter{
		client: client,
		prefix: prefix,
	}
}

func (m *Minter) Address() string {
	return m.client.ContractAddress()
}

func (m *Minter) Config(ctx context.Context) (*Config, error) {
	var resp Config
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{Config: &queryEmpty{}}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to query minter config")
	}

	return &resp, nil
}

func (m *Minter) IsWhitelisted(ctx context.Context, address string) (bool, error) {
	if err := types.ValidateAddress(address, m.prefix); err != nil {
		return false, err
	}

	var resp IsWhitelistedResponse
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{
		IsWhitelisted: &queryAddress{Address: address},
	}, &resp); err != nil {
		return false, errors.Wrap(err, "failed to query is whitelisted")
	}

	return resp.Whitelisted, nil
}

func (m *Minter) Whitelist(ctx context.Context, page types.RangeParams) ([]string, error) {
	var resp WhitelistResponse
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{Whitelist: &page}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to query whitelist")
	}

	return resp.Addresses, nil
}

func (m *Minter) MintCount(ctx context.Context, address string) (uint64, error) {
	if err := types.ValidateAddress(address, m.prefix); err != nil {
		return 0, err
	}

	var resp CountResponse
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{
		MintCount: &queryAddress{Address: address},
	}, &resp); err != nil {
		return 0, errors.Wrap(err, "failed to query mint count")
	}

	return resp.Count, nil
}

func (m *Minter) TotalMinted(ctx context.Context) (uint64, error) {
	var resp CountResponse
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{TotalMinted: &queryEmpty{}}, &resp); err != nil {
		return 0, errors.Wrap(err, "failed to query total minted")
	}

	return resp.Count, nil
}

// Mint mints one token for the sender paying funds, the contract checks
// the price, whitelist and limits. It returns the minted token id when the
// contract emits it.
func (m *Minter) Mint(ctx context.Context, funds sdk.Coins) (string, *cwclient.TxResponse, error) {
	res, err := m.client.Execute(ctx, ExecuteMsg{Mint: &mintMsg{}}, funds)
	if err != nil {
		return "", res, errors.Wrap(err, "failed to mint")
	}

	tokenId, _ := res.FindAttribute("wasm", EventTokenIdKey)
	return tokenId, res, nil
}

// MintWithPrice mints paying the price of the current config.
func (m *Minter) MintWithPrice(ctx context.Context) (string, *cwclient.TxResponse, error) {
	cfg, err := m.Config(ctx)
	if err != nil {
		return "", nil, err
	}

	var funds sdk.Coins
	if cfg.Price.Amount.IsPositive() {
		funds = sdk.NewCoins(cfg.Price)
	}

	return m.Mint(ctx, funds)
}

func (m *Minter) Reveal(ctx context.Context, tokenId string) (*cwclient.TxResponse, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}

	res, err := m.client.Execute(ctx, ExecuteMsg{Reveal: &revealMsg{TokenId: tokenId}}, nil)
	if err != nil {
		return res, errors.Wrapf(err, "failed to reveal %s", tokenId)
	}

	return res, nil
}

func (m *Minter) validateAddresses(addrs []string) error {
	if len(addrs) == 0 {
		return errorsmod.Wrap(types.ErrInvalidAddress, "no address")
	}

	for _, addr := range addrs {
		if err := types.ValidateAddress(addr, m.prefix); err != nil {
			return err
		}
	}

	return nil
}

func (m *Minter) AddToWhitelist(ctx context.Context, addrs []string) (*cwclient.TxResponse, error) {
	if err := m.validateAddresses(addrs); err != nil {
		return nil, err
	}

	res, err := m.client.Execute(ctx, ExecuteMsg{AddToWhitelist: &addressesMsg{Addresses: addrs}}, nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to add to whitelist")
	}

	return res, nil
}

func (m *Minter) RemoveFromWhitelist(ctx context.Context, addrs []string) (*cwclient.TxResponse, error) {
	if err := m.validateAddresses(addrs); err != nil {
		return nil, err
	}

	res, err := m.client.Execute(ctx, ExecuteMsg{RemoveFromWhitelist: &addressesMsg{Addresses: addrs}}, nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to remove from whitelist")
	}

	return res, nil
}

func (m *Minter) UpdateConfig(ctx context.Context, msg UpdateConfigMsg) (*cwclient.TxResponse, error) {
	if msg.isEmpty() {
		return nil, errors.New("nothing to update")
	}
	if msg.Admin != nil {
		if err := types.ValidateAddress(*msg.Admin, m.prefix); err != nil {
			return nil, err
		}
	}
	if msg.Price != nil {
		if err := msg.Price.Validate(); err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidPrice, "%s: %v", msg.Price, err)
		}
	}

	res, err := m.client.Execute(ctx, ExecuteMsg{UpdateConfig: &msg}, nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to update minter config")
	}

	return res, nil
}

// Withdraw sends the mint proceeds to the admin.
func (m *Minter) Withdraw(ctx context.Context, amount types.Uint128, denom string) (*cwclient.TxResponse, error) {
	if err := types.ValidatePrice(amount); err != nil {
		return nil, err
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidFunds, "%s: %v", denom, err)
	}

	res, err := m.client.Execute(ctx, ExecuteMsg{Withdraw: &withdrawMsg{Amount: amount, Denom: denom}}, nil)
	if err != nil {
		return res, errors.Wrap(err, "failed to withdraw")
	}

	return res, nil
}
