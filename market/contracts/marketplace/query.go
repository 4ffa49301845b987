package marketplace

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/types"
)

func (m *Marketplace) queryPage(ctx context.Context, name string, msg QueryMsg) (*PageResult, error) {
	var resp PageResult
	if err := m.client.QuerySmartContractState(ctx, msg, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", name)
	}

	if resp.Swaps == nil {
		resp.Swaps = []Swap{}
	}
	return &resp, nil
}

// List returns the ids of all swaps, in id order.
func (m *Marketplace) List(ctx context.Context, startAfter string, limit uint32) (*ListResponse, error) {
	r := types.NewRangeParams(startAfter, limit)

	var resp ListResponse
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{
		List: &queryList{StartAfter: r.StartAfter, Limit: r.Limit},
	}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to query list")
	}

	return &resp, nil
}

func (m *Marketplace) Details(ctx context.Context, id string) (*Swap, error) {
	if id == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "swap id")
	}

	var resp Swap
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{
		Details: &queryDetails{Id: id},
	}, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to query details of %s", id)
	}

	return &resp, nil
}

// GetTotal counts the swaps of swapType, or all of them when it is empty.
func (m *Marketplace) GetTotal(ctx context.Context, swapType SwapType) (uint64, error) {
	q := &queryGetTotal{}
	if swapType != "" {
		if err := swapType.Validate(); err != nil {
			return 0, err
		}
		q.SwapType = &swapType
	}

	var total uint64
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{GetTotal: q}, &total); err != nil {
		return 0, errors.Wrap(err, "failed to query total")
	}

	return total, nil
}

func (m *Marketplace) GetOffers(ctx context.Context, page types.PageParams) (*PageResult, error) {
	return m.queryPage(ctx, "offers", QueryMsg{GetOffers: &page})
}

func (m *Marketplace) GetListings(ctx context.Context, page types.PageParams) (*PageResult, error) {
	return m.queryPage(ctx, "listings", QueryMsg{GetListings: &page})
}

func (m *Marketplace) ListingsOfToken(
	ctx context.Context,
	tokenId string,
	cw721 string,
	swapType SwapType,
	page types.PageParams,
) (*PageResult, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}
	if err := types.ValidateAddress(cw721, m.prefix); err != nil {
		return nil, err
	}

	filter := NewSwapFilter(swapType, "")
	return m.queryPage(ctx, "listings of token", QueryMsg{
		ListingsOfToken: &queryListingsOfToken{
			TokenId:    tokenId,
			Cw721:      cw721,
			SwapType:   filter.SwapType,
			PageParams: page,
		},
	})
}

func (m *Marketplace) SwapsOf(
	ctx context.Context,
	address string,
	filter SwapFilter,
	page types.PageParams,
) (*PageResult, error) {
	if err := types.ValidateAddress(address, m.prefix); err != nil {
		return nil, err
	}

	return m.queryPage(ctx, "swaps of", QueryMsg{
		SwapsOf: &querySwapsOf{
			Address:    address,
			SwapFilter: filter,
			PageParams: page,
		},
	})
}

// SwapsByPrice returns the swaps with min <= price <= max, a nil bound is
// open.
func (m *Marketplace) SwapsByPrice(
	ctx context.Context,
	minPrice, maxPrice *types.Uint128,
	filter SwapFilter,
	page types.PageParams,
) (*PageResult, error) {
	if minPrice != nil && maxPrice != nil && minPrice.GT(maxPrice.Int) {
		return nil, errorsmod.Wrapf(types.ErrInvalidPrice, "min %s above max %s", minPrice, maxPrice)
	}

	return m.queryPage(ctx, "swaps by price", QueryMsg{
		SwapsByPrice: &querySwapsByPrice{
			Min:        minPrice,
			Max:        maxPrice,
			SwapFilter: filter,
			PageParams: page,
		},
	})
}

// SwapsByDenom returns the swaps paid with paymentToken, or with the native
// denom when it is empty.
func (m *Marketplace) SwapsByDenom(
	ctx context.Context,
	paymentToken string,
	filter SwapFilter,
	page types.PageParams,
) (*PageResult, error) {
	return m.queryPage(ctx, "swaps by denom", QueryMsg{
		SwapsByDenom: &querySwapsByDenom{
			PaymentToken: types.OptionalString(paymentToken),
			SwapFilter:   filter,
			PageParams:   page,
		},
	})
}

func (m *Marketplace) SwapsByPaymentType(
	ctx context.Context,
	cw20 bool,
	filter SwapFilter,
	page types.PageParams,
) (*PageResult, error) {
	return m.queryPage(ctx, "swaps by payment type", QueryMsg{
		SwapsByPaymentType: &querySwapsByPaymentType{
			Cw20:       cw20,
			SwapFilter: filter,
			PageParams: page,
		},
	})
}

func (m *Marketplace) Config(ctx context.Context) (*Config, error) {
	var resp Config
	if err := m.client.QuerySmartContractState(ctx, QueryMsg{Config: &queryConfig{}}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to query config")
	}

	return &resp, nil
}
