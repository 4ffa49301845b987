package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/alt-research/cw-nft-market/market/configs"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/metrics"
	"github.com/alt-research/cw-nft-market/market/sdk/client"
	"github.com/alt-research/cw-nft-market/market/testutil/mocks"
	"github.com/alt-research/cw-nft-market/market/types"
)

type mockBalances struct {
	coins sdk.Coins
}

func (m *mockBalances) QueryBalanceWithAddress(_ context.Context, _ string) (sdk.Coins, error) {
	return m.coins, nil
}

func testConfig() *configs.ClientConfig {
	cfg := &configs.ClientConfig{}
	cfg.Chain.ChainID = "uni-6"
	cfg.Chain.RPCAddr = "http://127.0.0.1:26657"
	cfg.Chain.AccountPrefix = "juno"
	cfg.Contracts.Marketplace = mocks.AddrMarketplace
	cfg.Contracts.Collection = mocks.AddrCollection
	cfg.Contracts.Minter = mocks.AddrMinter
	cfg.WithDefaults()
	return cfg
}

func TestContractsBoundToConfig(t *testing.T) {
	querier := mocks.NewMockQueryClient().
		Respond("num_tokens", map[string]uint64{"count": 3}).
		Respond("total_minted", map[string]uint64{"count": 2})

	c := client.NewClientWithQuerier(logging.NewNopLogger(), testConfig(), querier)
	ctx := context.Background()

	require.Equal(t, mocks.AddrMarketplace, c.Marketplace().Address())
	require.Equal(t, mocks.AddrCollection, c.Collection().Address())
	require.Equal(t, mocks.AddrMinter, c.Minter().Address())
	require.Empty(t, c.PaymentToken().Address())

	n, err := c.Collection().NumTokens(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
	require.Equal(t, mocks.AddrCollection, querier.LastQuery().Contract)

	_, err = c.Minter().TotalMinted(ctx)
	require.NoError(t, err)
	require.Equal(t, mocks.AddrMinter, querier.LastQuery().Contract)

	_, err = c.PaymentToken().TokenInfo(ctx)
	require.ErrorIs(t, err, types.ErrNoContract)

	_, err = c.Marketplace().Cancel(ctx, "1")
	require.ErrorIs(t, err, types.ErrReadOnly)
}

func TestSenderBalance(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewClientMetricsWithRegistry(reg)

	balances := &mockBalances{coins: sdk.NewCoins(sdk.NewCoin("ujuno", sdkmath.NewInt(2500)))}
	c := client.NewClientWithQuerier(
		logging.NewNopLogger(),
		testConfig(),
		mocks.NewMockQueryClient(),
		client.WithSigner(mocks.NewMockBroadcaster(), mocks.AddrAlice),
		client.WithBalanceQuerier(balances),
		client.WithMetrics(m),
	)

	coins, err := c.SenderBalance(context.Background())
	require.NoError(t, err)
	require.Equal(t, balances.coins, coins)

	require.Equal(t, 1, testutil.CollectAndCount(reg, "market_client_sender_balance"))

	readOnly := client.NewClientWithQuerier(logging.NewNopLogger(), testConfig(), mocks.NewMockQueryClient())
	_, err = readOnly.SenderBalance(context.Background())
	require.ErrorIs(t, err, types.ErrReadOnly)
}

func TestTokenMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Off-chain 1","description":"from the token uri"}`))
	}))
	defer srv.Close()

	querier := mocks.NewMockQueryClient().
		Respond("nft_info", map[string]any{
			"token_uri": srv.URL + "/1.json",
			"extension": map[string]any{"name": "On-chain 1"},
		})

	c := client.NewClientWithQuerier(logging.NewNopLogger(), testConfig(), querier)

	md, err := c.TokenMetadata(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "Off-chain 1", *md.Metadata.Name)
	require.Equal(t, srv.URL+"/1.json", *md.TokenUri)

	// falls back to the extension when the uri can not be resolved
	querier.Respond("nft_info", map[string]any{
		"token_uri": "ftp://nowhere/1.json",
		"extension": map[string]any{"name": "On-chain 1"},
	})
	md, err = c.TokenMetadata(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "On-chain 1", *md.Metadata.Name)

	querier.Respond("nft_info", map[string]any{"token_uri": "ftp://nowhere/1.json", "extension": nil})
	_, err = c.TokenMetadata(context.Background(), "1")
	require.Error(t, err)
}
