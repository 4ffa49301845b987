package cw20

import (
	"github.com/alt-research/cw-nft-market/market/types"
)

// QueryMsg is the cw20-base query msg, exactly one field is set.
type QueryMsg struct {
	Balance   *queryBalance   `json:"balance,omitempty"`
	TokenInfo *queryTokenInfo `json:"token_info,omitempty"`
	Allowance *queryAllowance `json:"allowance,omitempty"`
}

type queryBalance struct {
	Address string `json:"address"`
}

type queryTokenInfo struct{}

type queryAllowance struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

type BalanceResponse struct {
	Balance types.Uint128 `json:"balance"`
}

type TokenInfoResponse struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Decimals    uint8         `json:"decimals"`
	TotalSupply types.Uint128 `json:"total_supply"`
}

type AllowanceResponse struct {
	Allowance types.Uint128    `json:"allowance"`
	Expires   types.Expiration `json:"expires"`
}

// ExecuteMsg is the subset of the cw20-base execute msg used by the market.
type ExecuteMsg struct {
	Transfer          *transferMsg  `json:"transfer,omitempty"`
	IncreaseAllowance *allowanceMsg `json:"increase_allowance,omitempty"`
	DecreaseAllowance *allowanceMsg `json:"decrease_allowance,omitempty"`
}

type transferMsg struct {
	Recipient string        `json:"recipient"`
	Amount    types.Uint128 `json:"amount"`
}

type allowanceMsg struct {
	Spender string            `json:"spender"`
	Amount  types.Uint128     `json:"amount"`
	Expires *types.Expiration `json:"expires,omitempty"`
}

func NewTransferMsg(recipient string, amount types.Uint128) ExecuteMsg {
	return ExecuteMsg{
		Transfer: &transferMsg{
			Recipient: recipient,
			Amount:    amount,
		},
	}
}

// NewIncreaseAllowanceMsg lets spender move amount more tokens of the sender,
// expires nil keeps the current expiration.
func NewIncreaseAllowanceMsg(spender string, amount types.Uint128, expires *types.Expiration) ExecuteMsg {
	return ExecuteMsg{
		IncreaseAllowance: &allowanceMsg{
			Spender: spender,
			Amount:  amount,
			Expires: expires,
		},
	}
}

func NewDecreaseAllowanceMsg(spender string, amount types.Uint128, expires *types.Expiration) ExecuteMsg {
	return ExecuteMsg{
		DecreaseAllowance: &allowanceMsg{
			Spender: spender,
			Amount:  amount,
			Expires: expires,
		},
	}
}
