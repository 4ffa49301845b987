package minter_test

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/relayer/v2/relayer/provider"
	"github.com/stretchr/testify/require"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/contracts/minter"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/testutil/mocks"
	"github.com/alt-research/cw-nft-market/market/types"
)

func newMinter(t *testing.T) (*minter.Minter, *mocks.MockQueryClient, *mocks.MockBroadcaster) {
	t.Helper()

	querier := mocks.NewMockQueryClient()
	broadcaster := mocks.NewMockBroadcaster()
	client := cwclient.NewCosmWasmClient(
		logging.NewNopLogger(),
		querier,
		"minter",
		mocks.AddrMinter,
		cwclient.WithBroadcaster(broadcaster, mocks.AddrAlice),
	)

	return minter.New(client, "juno"), querier, broadcaster
}

func testConfig() map[string]any {
	return map[string]any{
		"admin":             mocks.AddrCarol,
		"cw721":             mocks.AddrCollection,
		"price":             map[string]string{"denom": "ujuno", "amount": "1500000"},
		"max_supply":        1000,
		"per_address_limit": 2,
		"whitelist_only":    true,
		"base_uri":          "ipfs://QmBase",
		"placeholder_uri":   "ipfs://QmHidden",
	}
}

func TestQueries(t *testing.T) {
	m, querier, _ := newMinter(t)
	ctx := context.Background()

	querier.
		Respond("config", testConfig()).
		Respond("is_whitelisted", map[string]bool{"whitelisted": true}).
		Respond("whitelist", map[string][]string{"addresses": {mocks.AddrAlice, mocks.AddrBob}}).
		Respond("mint_count", map[string]uint64{"count": 1}).
		Respond("total_minted", map[string]uint64{"count": 77})

	cfg, err := m.Config(ctx)
	require.NoError(t, err)
	require.Equal(t, mocks.AddrCollection, cfg.Cw721)
	require.Equal(t, "1500000ujuno", cfg.Price.String())
	require.True(t, cfg.WhitelistOnly)

	ok, err := m.IsWhitelisted(ctx, mocks.AddrBob)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"is_whitelisted":{"address":"`+mocks.AddrBob+`"}}`, string(querier.LastQuery().Data))

	list, err := m.Whitelist(ctx, types.NewRangeParams(mocks.AddrAlice, 0))
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.JSONEq(t, `{"whitelist":{"start_after":"`+mocks.AddrAlice+`"}}`, string(querier.LastQuery().Data))

	count, err := m.MintCount(ctx, mocks.AddrBob)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	total, err := m.TotalMinted(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(77), total)
}

func TestMintWithPrice(t *testing.T) {
	m, querier, broadcaster := newMinter(t)
	querier.Respond("config", testConfig())

	broadcaster.Response.Events = []provider.RelayerEvent{
		{EventType: "wasm", Attributes: map[string]string{"action": "mint", "token_id": "42"}},
	}

	tokenId, res, err := m.MintWithPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, "42", tokenId)
	require.NotNil(t, res)

	sent := broadcaster.LastTx()
	require.Len(t, sent, 1)
	require.JSONEq(t, `{"mint":{}}`, string(sent[0].Msg))
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("ujuno", sdkmath.NewInt(1500000))), sent[0].Funds)
}

func TestExecutes(t *testing.T) {
	m, _, broadcaster := newMinter(t)
	ctx := context.Background()

	_, err := m.Reveal(ctx, "42")
	require.NoError(t, err)
	require.JSONEq(t, `{"reveal":{"token_id":"42"}}`, string(broadcaster.LastTx()[0].Msg))

	_, err = m.AddToWhitelist(ctx, []string{mocks.AddrBob, mocks.AddrCarol})
	require.NoError(t, err)
	require.JSONEq(t,
		`{"add_to_whitelist":{"addresses":["`+mocks.AddrBob+`","`+mocks.AddrCarol+`"]}}`,
		string(broadcaster.LastTx()[0].Msg))

	limit := uint32(5)
	_, err = m.UpdateConfig(ctx, minter.UpdateConfigMsg{PerAddressLimit: &limit})
	require.NoError(t, err)
	require.JSONEq(t, `{"update_config":{"per_address_limit":5}}`, string(broadcaster.LastTx()[0].Msg))

	_, err = m.Withdraw(ctx, types.NewUint128(100), "ujuno")
	require.NoError(t, err)
	require.JSONEq(t, `{"withdraw":{"amount":"100","denom":"ujuno"}}`, string(broadcaster.LastTx()[0].Msg))

	_, err = m.Reveal(ctx, "")
	require.ErrorIs(t, err, types.ErrEmptyId)

	_, err = m.RemoveFromWhitelist(ctx, nil)
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = m.UpdateConfig(ctx, minter.UpdateConfigMsg{})
	require.Error(t, err)

	_, err = m.Withdraw(ctx, types.NewUint128(0), "ujuno")
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	require.Len(t, broadcaster.Sent, 4)
}
