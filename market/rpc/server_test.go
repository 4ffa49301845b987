package rpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alt-research/cw-nft-market/market/configs"
	"github.com/alt-research/cw-nft-market/market/contracts/marketplace"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/rpc"
	"github.com/alt-research/cw-nft-market/market/sdk/client"
	"github.com/alt-research/cw-nft-market/market/testutil/mocks"
)

func newTestServer(t *testing.T, querier *mocks.MockQueryClient) *httptest.Server {
	t.Helper()

	cfg := &configs.ClientConfig{}
	cfg.Chain.ChainID = "uni-6"
	cfg.Chain.RPCAddr = "http://127.0.0.1:26657"
	cfg.Chain.AccountPrefix = "juno"
	cfg.Contracts.Marketplace = mocks.AddrMarketplace
	cfg.Contracts.Collection = mocks.AddrCollection
	cfg.Contracts.Minter = mocks.AddrMinter
	cfg.WithDefaults()

	c := client.NewClientWithQuerier(logging.NewNopLogger(), cfg, querier)

	srv, err := rpc.NewServer(logging.NewNopLogger(), cfg.Server, c)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func testQuerier() *mocks.MockQueryClient {
	return mocks.NewMockQueryClient().
		Respond("details", map[string]any{
			"id":            "swap-1",
			"creator":       mocks.AddrBob,
			"nft_contract":  mocks.AddrCollection,
			"payment_token": nil,
			"token_id":      "7",
			"expires":       map[string]any{"never": map[string]any{}},
			"price":         "100",
			"swap_type":     "Sale",
		}).
		Respond("get_listings", map[string]any{"swaps": []any{}, "page": 1, "total": 0}).
		Respond("swaps_of", map[string]any{"swaps": []any{}, "page": 1, "total": 0}).
		Respond("owner_of", map[string]any{"owner": mocks.AddrBob, "approvals": []any{}}).
		Respond("nft_info", map[string]any{"token_uri": nil, "extension": map[string]any{"name": "Token 7"}}).
		Respond("is_whitelisted", map[string]bool{"whitelisted": true})
}

func TestJsonRpc(t *testing.T) {
	querier := testQuerier()
	ts := newTestServer(t, querier)

	rpcClient, err := gethrpc.DialHTTP(ts.URL)
	require.NoError(t, err)
	defer rpcClient.Close()

	ctx := context.Background()

	var swap marketplace.Swap
	require.NoError(t, rpcClient.CallContext(ctx, &swap, "market_swapDetails", "swap-1"))
	require.Equal(t, "7", swap.TokenId)
	require.Equal(t, marketplace.Sale, swap.SwapType)

	var page marketplace.PageResult
	require.NoError(t, rpcClient.CallContext(ctx, &page, "market_listings", 2, 10))
	require.JSONEq(t, `{"get_listings":{"page":2,"limit":10}}`, string(querier.LastQuery().Data))

	require.NoError(t, rpcClient.CallContext(ctx, &page, "market_swapsOf", mocks.AddrBob, "offer"))
	require.JSONEq(t, `{"swaps_of":{"address":"`+mocks.AddrBob+`","swap_type":"Offer"}}`, string(querier.LastQuery().Data))

	var whitelisted bool
	require.NoError(t, rpcClient.CallContext(ctx, &whitelisted, "market_isWhitelisted", mocks.AddrBob))
	require.True(t, whitelisted)

	var md client.TokenMetadata
	require.NoError(t, rpcClient.CallContext(ctx, &md, "market_tokenMetadata", "7"))
	require.Equal(t, "Token 7", *md.Metadata.Name)

	err = rpcClient.CallContext(ctx, &swap, "market_swapDetails", "")
	require.ErrorContains(t, err, "empty id")

	err = rpcClient.CallContext(ctx, &swap, "market_swapsOf", mocks.AddrBob, "auction")
	require.Error(t, err)
}

func TestRest(t *testing.T) {
	ts := newTestServer(t, testQuerier())

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/v1/swaps/swap-1")
	require.NoError(t, err)
	var swap marketplace.Swap
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&swap))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "100", swap.Price.String())

	resp, err = http.Get(ts.URL + "/v1/tokens/7")
	require.NoError(t, err)
	var token rpc.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, mocks.AddrBob, token.Owner)
	require.Equal(t, "Token 7", *token.Metadata.Name)

	resp, err = http.Post(ts.URL+"/health", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRestSwapNotFound(t *testing.T) {
	querier := mocks.NewMockQueryClient().
		Fail("details", status.Error(codes.Unknown, "Generic error: swap not found: query wasm contract failed"))
	ts := newTestServer(t, querier)

	resp, err := http.Get(ts.URL + "/v1/swaps/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRestUpstreamError(t *testing.T) {
	ts := newTestServer(t, mocks.NewMockQueryClient())

	resp, err := http.Get(ts.URL + "/v1/swaps/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
