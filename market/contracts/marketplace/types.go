package marketplace

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/alt-research/cw-nft-market/market/types"
)

// SwapType tells whether a swap is a listing or a bid.
type SwapType string

const (
	// Sale is a listing: the creator sells the nft for price.
	Sale SwapType = "Sale"
	// Offer is a bid: the creator pays price for the nft.
	Offer SwapType = "Offer"
)

func ParseSwapType(s string) (SwapType, error) {
	switch strings.ToLower(s) {
	case "sale":
		return Sale, nil
	case "offer":
		return Offer, nil
	default:
		return "", errorsmod.Wrapf(types.ErrInvalidSwapType, "%q", s)
	}
}

func (s SwapType) Validate() error {
	if s != Sale && s != Offer {
		return errorsmod.Wrapf(types.ErrInvalidSwapType, "%q", string(s))
	}
	return nil
}

// Swap is a swap as stored by the marketplace.
type Swap struct {
	Id          string `json:"id"`
	Creator     string `json:"creator"`
	NftContract string `json:"nft_contract"`
	// nil for swaps paid in the native denom of the config
	PaymentToken *string          `json:"payment_token"`
	TokenId      string           `json:"token_id"`
	Expires      types.Expiration `json:"expires"`
	Price        types.Uint128    `json:"price"`
	SwapType     SwapType         `json:"swap_type"`
}

func (s *Swap) IsCw20Payment() bool {
	return s.PaymentToken != nil && *s.PaymentToken != ""
}

// SwapMsg creates a swap.
type SwapMsg struct {
	Id           string           `json:"id"`
	Cw721        string           `json:"cw721"`
	PaymentToken *string          `json:"payment_token,omitempty"`
	TokenId      string           `json:"token_id"`
	Expires      types.Expiration `json:"expires"`
	Price        types.Uint128    `json:"price"`
	SwapType     SwapType         `json:"swap_type"`
}

func (m SwapMsg) Validate(prefix string) error {
	if m.Id == "" {
		return errorsmod.Wrap(types.ErrEmptyId, "swap id")
	}
	if m.TokenId == "" {
		return errorsmod.Wrap(types.ErrEmptyId, "token id")
	}
	if err := types.ValidateAddress(m.Cw721, prefix); err != nil {
		return errorsmod.Wrap(err, "cw721")
	}
	if m.PaymentToken != nil {
		if err := types.ValidateAddress(*m.PaymentToken, prefix); err != nil {
			return errorsmod.Wrap(err, "payment token")
		}
	}
	if err := types.ValidatePrice(m.Price); err != nil {
		return err
	}
	if err := m.Expires.Validate(); err != nil {
		return err
	}
	return m.SwapType.Validate()
}

// Config is the marketplace config.
type Config struct {
	Admin string `json:"admin"`
	// native denom of the swaps without payment token
	Denom string   `json:"denom"`
	Cw721 []string `json:"cw721"`
	// fee taken by the marketplace on finish, in percent
	FeePercentage uint64 `json:"fee_percentage"`
}

// PageResult is a page of swaps.
type PageResult struct {
	Swaps []Swap `json:"swaps"`
	Page  uint32 `json:"page"`
	Total uint64 `json:"total"`
}

// ListResponse holds the ids of the swaps.
type ListResponse struct {
	Swaps []string `json:"swaps"`
}

// SwapFilter narrows the filtered page queries, zero values match all.
type SwapFilter struct {
	SwapType *SwapType `json:"swap_type,omitempty"`
	Cw721    *string   `json:"cw721,omitempty"`
}

func NewSwapFilter(swapType SwapType, cw721 string) SwapFilter {
	f := SwapFilter{Cw721: types.OptionalString(cw721)}
	if swapType != "" {
		f.SwapType = &swapType
	}
	return f
}
