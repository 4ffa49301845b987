package marketplace_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/contracts/marketplace"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/testutil/mocks"
	"github.com/alt-research/cw-nft-market/market/types"
)

func newMarketplace(t *testing.T) (*marketplace.Marketplace, *mocks.MockQueryClient, *mocks.MockBroadcaster) {
	t.Helper()

	querier := mocks.NewMockQueryClient()
	broadcaster := mocks.NewMockBroadcaster()
	client := cwclient.NewCosmWasmClient(
		logging.NewNopLogger(),
		querier,
		"marketplace",
		mocks.AddrMarketplace,
		cwclient.WithBroadcaster(broadcaster, mocks.AddrAlice),
	)

	return marketplace.New(client, "juno"), querier, broadcaster
}

func saleMsg() marketplace.SwapMsg {
	return marketplace.SwapMsg{
		Id:       "swap-1",
		Cw721:    mocks.AddrCollection,
		TokenId:  "7",
		Expires:  types.ExpiresAtHeight(5000),
		Price:    types.NewUint128(1000000),
		SwapType: marketplace.Sale,
	}
}

func swapJSON(swapType string, paymentToken any) map[string]any {
	return map[string]any{
		"id":            "swap-1",
		"creator":       mocks.AddrBob,
		"nft_contract":  mocks.AddrCollection,
		"payment_token": paymentToken,
		"token_id":      "7",
		"expires":       map[string]any{"at_height": 5000},
		"price":         "1000000",
		"swap_type":     swapType,
	}
}

func TestCreateMsgJSON(t *testing.T) {
	bz, err := json.Marshal(marketplace.NewCreateMsg(saleMsg()))
	require.NoError(t, err)
	require.JSONEq(t, `{"create":{
		"id":"swap-1",
		"cw721":"`+mocks.AddrCollection+`",
		"token_id":"7",
		"expires":{"at_height":5000},
		"price":"1000000",
		"swap_type":"Sale"
	}}`, string(bz))
}

func TestSwapMsgValidate(t *testing.T) {
	require.NoError(t, saleMsg().Validate("juno"))

	cases := []struct {
		name   string
		modify func(m *marketplace.SwapMsg)
		err    error
	}{
		{"empty id", func(m *marketplace.SwapMsg) { m.Id = "" }, types.ErrEmptyId},
		{"empty token id", func(m *marketplace.SwapMsg) { m.TokenId = "" }, types.ErrEmptyId},
		{"bad cw721", func(m *marketplace.SwapMsg) { m.Cw721 = "juno1bad" }, types.ErrInvalidAddress},
		{"bad payment token", func(m *marketplace.SwapMsg) { m.PaymentToken = types.OptionalString("x") }, types.ErrInvalidAddress},
		{"zero price", func(m *marketplace.SwapMsg) { m.Price = types.NewUint128(0) }, types.ErrInvalidPrice},
		{"no expiration", func(m *marketplace.SwapMsg) { m.Expires = types.Expiration{} }, types.ErrInvalidExpiration},
		{"bad swap type", func(m *marketplace.SwapMsg) { m.SwapType = "Auction" }, types.ErrInvalidSwapType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := saleMsg()
			tc.modify(&msg)
			require.ErrorIs(t, msg.Validate("juno"), tc.err)
		})
	}
}

func TestParseSwapType(t *testing.T) {
	st, err := marketplace.ParseSwapType("sale")
	require.NoError(t, err)
	require.Equal(t, marketplace.Sale, st)

	st, err = marketplace.ParseSwapType("Offer")
	require.NoError(t, err)
	require.Equal(t, marketplace.Offer, st)

	_, err = marketplace.ParseSwapType("auction")
	require.ErrorIs(t, err, types.ErrInvalidSwapType)
}

func TestQueries(t *testing.T) {
	m, querier, _ := newMarketplace(t)
	ctx := context.Background()

	querier.
		Respond("list", map[string]any{"swaps": []string{"a", "b"}}).
		Respond("details", swapJSON("Sale", nil)).
		Respond("get_total", 12).
		Respond("get_listings", map[string]any{"swaps": []any{swapJSON("Sale", nil)}, "page": 1, "total": 1}).
		Respond("get_offers", map[string]any{"swaps": nil, "page": 1, "total": 0}).
		Respond("swaps_of", map[string]any{"swaps": []any{}, "page": 2, "total": 0}).
		Respond("swaps_by_price", map[string]any{"swaps": []any{}, "page": 1, "total": 0}).
		Respond("swaps_by_denom", map[string]any{"swaps": []any{}, "page": 1, "total": 0}).
		Respond("swaps_by_payment_type", map[string]any{"swaps": []any{}, "page": 1, "total": 0}).
		Respond("listings_of_token", map[string]any{"swaps": []any{}, "page": 1, "total": 0}).
		Respond("config", map[string]any{
			"admin": mocks.AddrCarol, "denom": "ujuno", "cw721": []string{mocks.AddrCollection}, "fee_percentage": 2,
		})

	list, err := m.List(ctx, "a", 10)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, list.Swaps)
	require.JSONEq(t, `{"list":{"start_after":"a","limit":10}}`, string(querier.LastQuery().Data))

	swap, err := m.Details(ctx, "swap-1")
	require.NoError(t, err)
	require.Equal(t, marketplace.Sale, swap.SwapType)
	require.False(t, swap.IsCw20Payment())
	require.Equal(t, "1000000", swap.Price.String())

	total, err := m.GetTotal(ctx, marketplace.Offer)
	require.NoError(t, err)
	require.Equal(t, uint64(12), total)
	require.JSONEq(t, `{"get_total":{"swap_type":"Offer"}}`, string(querier.LastQuery().Data))

	_, err = m.GetTotal(ctx, "")
	require.NoError(t, err)
	require.JSONEq(t, `{"get_total":{}}`, string(querier.LastQuery().Data))

	listings, err := m.GetListings(ctx, types.NewPageParams(1, 20))
	require.NoError(t, err)
	require.Len(t, listings.Swaps, 1)
	require.JSONEq(t, `{"get_listings":{"page":1,"limit":20}}`, string(querier.LastQuery().Data))

	offers, err := m.GetOffers(ctx, types.PageParams{})
	require.NoError(t, err)
	require.NotNil(t, offers.Swaps)
	require.Empty(t, offers.Swaps)

	_, err = m.SwapsOf(ctx, mocks.AddrBob, marketplace.NewSwapFilter(marketplace.Sale, mocks.AddrCollection), types.NewPageParams(2, 0))
	require.NoError(t, err)
	require.JSONEq(t, `{"swaps_of":{
		"address":"`+mocks.AddrBob+`",
		"swap_type":"Sale",
		"cw721":"`+mocks.AddrCollection+`",
		"page":2
	}}`, string(querier.LastQuery().Data))

	lo, hi := types.NewUint128(10), types.NewUint128(100)
	_, err = m.SwapsByPrice(ctx, &lo, &hi, marketplace.SwapFilter{}, types.PageParams{})
	require.NoError(t, err)
	require.JSONEq(t, `{"swaps_by_price":{"min":"10","max":"100"}}`, string(querier.LastQuery().Data))

	_, err = m.SwapsByPrice(ctx, &hi, &lo, marketplace.SwapFilter{}, types.PageParams{})
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	_, err = m.SwapsByDenom(ctx, mocks.AddrPaymentToken, marketplace.SwapFilter{}, types.PageParams{})
	require.NoError(t, err)
	require.JSONEq(t, `{"swaps_by_denom":{"payment_token":"`+mocks.AddrPaymentToken+`"}}`, string(querier.LastQuery().Data))

	_, err = m.SwapsByPaymentType(ctx, false, marketplace.NewSwapFilter(marketplace.Offer, ""), types.PageParams{})
	require.NoError(t, err)
	require.JSONEq(t, `{"swaps_by_payment_type":{"cw20":false,"swap_type":"Offer"}}`, string(querier.LastQuery().Data))

	_, err = m.ListingsOfToken(ctx, "7", mocks.AddrCollection, "", types.PageParams{})
	require.NoError(t, err)
	require.JSONEq(t, `{"listings_of_token":{"token_id":"7","cw721":"`+mocks.AddrCollection+`"}}`, string(querier.LastQuery().Data))

	cfg, err := m.Config(ctx)
	require.NoError(t, err)
	require.Equal(t, "ujuno", cfg.Denom)
	require.Equal(t, uint64(2), cfg.FeePercentage)

	_, err = m.Details(ctx, "")
	require.ErrorIs(t, err, types.ErrEmptyId)
}

func TestExecutes(t *testing.T) {
	m, _, broadcaster := newMarketplace(t)
	ctx := context.Background()

	_, err := m.Create(ctx, saleMsg())
	require.NoError(t, err)
	require.Equal(t, mocks.AddrMarketplace, broadcaster.LastTx()[0].Contract)

	_, err = m.Cancel(ctx, "swap-1")
	require.NoError(t, err)
	require.JSONEq(t, `{"cancel":{"id":"swap-1"}}`, string(broadcaster.LastTx()[0].Msg))

	_, err = m.Update(ctx, "swap-1", types.ExpiresNever(), types.NewUint128(5))
	require.NoError(t, err)
	require.JSONEq(t, `{"update":{"id":"swap-1","expires":{"never":{}},"price":"5"}}`, string(broadcaster.LastTx()[0].Msg))

	_, err = m.Withdraw(ctx, types.NewUint128(5), "ujuno", "")
	require.NoError(t, err)
	require.JSONEq(t, `{"withdraw":{"amount":"5","denom":"ujuno"}}`, string(broadcaster.LastTx()[0].Msg))

	_, err = m.UpdateConfig(ctx, marketplace.Config{
		Admin: mocks.AddrCarol, Denom: "ujuno", Cw721: []string{mocks.AddrCollection}, FeePercentage: 3,
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"update_config":{"config":{
		"admin":"`+mocks.AddrCarol+`","denom":"ujuno","cw721":["`+mocks.AddrCollection+`"],"fee_percentage":3
	}}}`, string(broadcaster.LastTx()[0].Msg))

	_, err = m.UpdateConfig(ctx, marketplace.Config{Admin: mocks.AddrCarol, Denom: "ujuno", FeePercentage: 101})
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	_, err = m.Update(ctx, "swap-1", types.Expiration{}, types.NewUint128(5))
	require.ErrorIs(t, err, types.ErrInvalidExpiration)

	_, err = m.Finish(ctx, "", nil)
	require.ErrorIs(t, err, types.ErrEmptyId)

	require.Len(t, broadcaster.Sent, 5)
}

func TestListForSale(t *testing.T) {
	m, _, broadcaster := newMarketplace(t)

	msg := saleMsg()
	msg.SwapType = ""
	_, err := m.ListForSale(context.Background(), msg)
	require.NoError(t, err)

	sent := broadcaster.LastTx()
	require.Len(t, sent, 2)
	require.Equal(t, mocks.AddrCollection, sent[0].Contract)
	require.JSONEq(t, `{"approve":{"spender":"`+mocks.AddrMarketplace+`","token_id":"7"}}`, string(sent[0].Msg))
	require.Equal(t, mocks.AddrMarketplace, sent[1].Contract)
	require.Equal(t, "create", cwclient.ActionOf(sent[1].Msg))
	require.Equal(t, []string{"list swap-1"}, broadcaster.Memos)

	msg.SwapType = marketplace.Offer
	_, err = m.ListForSale(context.Background(), msg)
	require.ErrorIs(t, err, types.ErrInvalidSwapType)
}

func TestMakeOffer(t *testing.T) {
	m, _, broadcaster := newMarketplace(t)

	msg := saleMsg()
	msg.SwapType = marketplace.Offer
	_, err := m.MakeOffer(context.Background(), msg)
	require.ErrorIs(t, err, types.ErrInvalidFunds)

	msg.PaymentToken = types.OptionalString(mocks.AddrPaymentToken)
	_, err = m.MakeOffer(context.Background(), msg)
	require.NoError(t, err)

	sent := broadcaster.LastTx()
	require.Len(t, sent, 2)
	require.Equal(t, mocks.AddrPaymentToken, sent[0].Contract)
	require.JSONEq(t,
		`{"increase_allowance":{"spender":"`+mocks.AddrMarketplace+`","amount":"1000000"}}`,
		string(sent[0].Msg))
	require.Equal(t, "create", cwclient.ActionOf(sent[1].Msg))
}

func TestBuyNative(t *testing.T) {
	m, querier, broadcaster := newMarketplace(t)
	querier.
		Respond("details", swapJSON("Sale", nil)).
		Respond("config", map[string]any{"admin": mocks.AddrCarol, "denom": "ujuno", "cw721": []string{}, "fee_percentage": 1})

	_, err := m.Buy(context.Background(), "swap-1")
	require.NoError(t, err)

	sent := broadcaster.LastTx()
	require.Len(t, sent, 1)
	require.JSONEq(t, `{"finish":{"id":"swap-1"}}`, string(sent[0].Msg))
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("ujuno", sdkmath.NewInt(1000000))), sent[0].Funds)
}

func TestBuyCw20(t *testing.T) {
	m, querier, broadcaster := newMarketplace(t)
	querier.Respond("details", swapJSON("Sale", mocks.AddrPaymentToken))

	_, err := m.Buy(context.Background(), "swap-1")
	require.NoError(t, err)

	sent := broadcaster.LastTx()
	require.Len(t, sent, 2)
	require.Equal(t, mocks.AddrPaymentToken, sent[0].Contract)
	require.Equal(t, "increase_allowance", cwclient.ActionOf(sent[0].Msg))
	require.Equal(t, "finish", cwclient.ActionOf(sent[1].Msg))
	require.True(t, sent[1].Funds.Empty())
}

func TestBuyOfferRejected(t *testing.T) {
	m, querier, broadcaster := newMarketplace(t)
	querier.Respond("details", swapJSON("Offer", mocks.AddrPaymentToken))

	_, err := m.Buy(context.Background(), "swap-1")
	require.ErrorIs(t, err, types.ErrInvalidSwapType)
	require.Empty(t, broadcaster.Sent)
}

func TestAcceptOffer(t *testing.T) {
	m, querier, broadcaster := newMarketplace(t)
	querier.Respond("details", swapJSON("Offer", mocks.AddrPaymentToken))

	_, err := m.AcceptOffer(context.Background(), "swap-1")
	require.NoError(t, err)

	sent := broadcaster.LastTx()
	require.Len(t, sent, 2)
	require.Equal(t, mocks.AddrCollection, sent[0].Contract)
	require.JSONEq(t, `{"approve":{"spender":"`+mocks.AddrMarketplace+`","token_id":"7"}}`, string(sent[0].Msg))
	require.JSONEq(t, `{"finish":{"id":"swap-1"}}`, string(sent[1].Msg))

	querier.Respond("details", swapJSON("Sale", nil))
	_, err = m.AcceptOffer(context.Background(), "swap-1")
	require.ErrorIs(t, err, types.ErrInvalidSwapType)
}
