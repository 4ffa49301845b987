package marketplace

import (
	"github.com/alt-research/cw-nft-market/market/types"
)

// QueryMsg is the marketplace query msg, exactly one field is set.
type QueryMsg struct {
	List               *queryList               `json:"list,omitempty"`
	Details            *queryDetails            `json:"details,omitempty"`
	GetTotal           *queryGetTotal           `json:"get_total,omitempty"`
	GetOffers          *types.PageParams        `json:"get_offers,omitempty"`
	GetListings        *types.PageParams        `json:"get_listings,omitempty"`
	ListingsOfToken    *queryListingsOfToken    `json:"listings_of_token,omitempty"`
	SwapsOf            *querySwapsOf            `json:"swaps_of,omitempty"`
	SwapsByPrice       *querySwapsByPrice       `json:"swaps_by_price,omitempty"`
	SwapsByDenom       *querySwapsByDenom       `json:"swaps_by_denom,omitempty"`
	SwapsByPaymentType *querySwapsByPaymentType `json:"swaps_by_payment_type,omitempty"`
	Config             *queryConfig             `json:"config,omitempty"`
}

type queryList struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type queryDetails struct {
	Id string `json:"id"`
}

type queryGetTotal struct {
	SwapType *SwapType `json:"swap_type,omitempty"`
}

type queryListingsOfToken struct {
	TokenId  string    `json:"token_id"`
	Cw721    string    `json:"cw721"`
	SwapType *SwapType `json:"swap_type,omitempty"`
	types.PageParams
}

type querySwapsOf struct {
	Address string `json:"address"`
	SwapFilter
	types.PageParams
}

type querySwapsByPrice struct {
	Min *types.Uint128 `json:"min,omitempty"`
	Max *types.Uint128 `json:"max,omitempty"`
	SwapFilter
	types.PageParams
}

type querySwapsByDenom struct {
	PaymentToken *string `json:"payment_token,omitempty"`
	SwapFilter
	types.PageParams
}

type querySwapsByPaymentType struct {
	Cw20 bool `json:"cw20"`
	SwapFilter
	types.PageParams
}

type queryConfig struct{}

// ExecuteMsg is the marketplace execute msg, exactly one field is set.
type ExecuteMsg struct {
	Create       *SwapMsg         `json:"create,omitempty"`
	Finish       *idMsg           `json:"finish,omitempty"`
	Cancel       *idMsg           `json:"cancel,omitempty"`
	Update       *updateMsg       `json:"update,omitempty"`
	UpdateConfig *updateConfigMsg `json:"update_config,omitempty"`
	Withdraw     *withdrawMsg     `json:"withdraw,omitempty"`
}

type idMsg struct {
	Id string `json:"id"`
}

type updateMsg struct {
	Id      string           `json:"id"`
	Expires types.Expiration `json:"expires"`
	Price   types.Uint128    `json:"price"`
}

type updateConfigMsg struct {
	Config Config `json:"config"`
}

type withdrawMsg struct {
	Amount       types.Uint128 `json:"amount"`
	Denom        string        `json:"denom"`
	PaymentToken *string       `json:"payment_token,omitempty"`
}

func NewCreateMsg(msg SwapMsg) ExecuteMsg {
	return ExecuteMsg{Create: &msg}
}

func NewFinishMsg(id string) ExecuteMsg {
	return ExecuteMsg{Finish: &idMsg{Id: id}}
}

func NewCancelMsg(id string) ExecuteMsg {
	return ExecuteMsg{Cancel: &idMsg{Id: id}}
}

func NewUpdateMsg(id string, expires types.Expiration, price types.Uint128) ExecuteMsg {
	return ExecuteMsg{Update: &updateMsg{Id: id, Expires: expires, Price: price}}
}

func NewUpdateConfigMsg(cfg Config) ExecuteMsg {
	return ExecuteMsg{UpdateConfig: &updateConfigMsg{Config: cfg}}
}

func NewWithdrawMsg(amount types.Uint128, denom string, paymentToken *string) ExecuteMsg {
	return ExecuteMsg{Withdraw: &withdrawMsg{Amount: amount, Denom: denom, PaymentToken: paymentToken}}
}
