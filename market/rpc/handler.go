package rpc

import (
	"context"

	"github.com/alt-research/cw-nft-market/market/contracts/cw721"
	"github.com/alt-research/cw-nft-market/market/contracts/marketplace"
	"github.com/alt-research/cw-nft-market/market/contracts/minter"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/sdk/client"
	"github.com/alt-research/cw-nft-market/market/types"
)

// MarketQuerier is the read side of the sdk client served by the gateway.
type MarketQuerier interface {
	Marketplace() *marketplace.Marketplace
	Collection() *cw721.Collection
	Minter() *minter.Minter
	TokenMetadata(ctx context.Context, tokenId string) (*client.TokenMetadata, error)
}

// JsonRpcHandler serves the `market` namespace, every method is read only.
type JsonRpcHandler struct {
	logger logging.Logger
	client MarketQuerier
}

func pageParams(page, limit *uint32) types.PageParams {
	return types.PageParams{Page: page, Limit: limit}
}

func (h *JsonRpcHandler) SwapDetails(ctx context.Context, id string) (*marketplace.Swap, error) {
	h.logger.Debug("swap details", "id", id)
	return h.client.Marketplace().Details(ctx, id)
}

func (h *JsonRpcHandler) Listings(ctx context.Context, page, limit *uint32) (*marketplace.PageResult, error) {
	return h.client.Marketplace().GetListings(ctx, pageParams(page, limit))
}

func (h *JsonRpcHandler) Offers(ctx context.Context, page, limit *uint32) (*marketplace.PageResult, error) {
	return h.client.Marketplace().GetOffers(ctx, pageParams(page, limit))
}

func (h *JsonRpcHandler) SwapsOf(
	ctx context.Context,
	address string,
	swapType *string,
	page, limit *uint32,
) (*marketplace.PageResult, error) {
	filter := marketplace.SwapFilter{}
	if swapType != nil && *swapType != "" {
		st, err := marketplace.ParseSwapType(*swapType)
		if err != nil {
			return nil, err
		}
		filter.SwapType = &st
	}

	return h.client.Marketplace().SwapsOf(ctx, address, filter, pageParams(page, limit))
}

func (h *JsonRpcHandler) OwnerOf(ctx context.Context, tokenId string) (*cw721.OwnerOfResponse, error) {
	return h.client.Collection().OwnerOf(ctx, tokenId, false)
}

func (h *JsonRpcHandler) NftInfo(ctx context.Context, tokenId string) (*cw721.NftInfoResponse, error) {
	return h.client.Collection().NftInfo(ctx, tokenId)
}

func (h *JsonRpcHandler) TokenMetadata(ctx context.Context, tokenId string) (*client.TokenMetadata, error) {
	return h.client.TokenMetadata(ctx, tokenId)
}

func (h *JsonRpcHandler) IsWhitelisted(ctx context.Context, address string) (bool, error) {
	return h.client.Minter().IsWhitelisted(ctx, address)
}

func (h *JsonRpcHandler) MinterConfig(ctx context.Context) (*minter.Config, error) {
	return h.client.Minter().Config(ctx)
}
