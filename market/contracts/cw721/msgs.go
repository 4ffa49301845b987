package cw721

import (
	"github.com/alt-research/cw-nft-market/market/types"
)

// QueryMsg is the cw721-base query msg, exactly one field is set.
type QueryMsg struct {
	OwnerOf      *queryOwnerOf      `json:"owner_of,omitempty"`
	Approval     *queryApproval     `json:"approval,omitempty"`
	Approvals    *queryApprovals    `json:"approvals,omitempty"`
	AllOperators *queryAllOperators `json:"all_operators,omitempty"`
	NumTokens    *queryEmpty        `json:"num_tokens,omitempty"`
	ContractInfo *queryEmpty        `json:"contract_info,omitempty"`
	NftInfo      *queryNftInfo      `json:"nft_info,omitempty"`
	AllNftInfo   *queryOwnerOf      `json:"all_nft_info,omitempty"`
	Tokens       *queryTokens       `json:"tokens,omitempty"`
	AllTokens    *types.RangeParams `json:"all_tokens,omitempty"`
	Minter       *queryEmpty        `json:"minter,omitempty"`
}

type queryEmpty struct{}

type queryOwnerOf struct {
	TokenId        string `json:"token_id"`
	IncludeExpired *bool  `json:"include_expired,omitempty"`
}

type queryApproval struct {
	TokenId        string `json:"token_id"`
	Spender        string `json:"spender"`
	IncludeExpired *bool  `json:"include_expired,omitempty"`
}

type queryApprovals = queryOwnerOf

type queryAllOperators struct {
	Owner          string `json:"owner"`
	IncludeExpired *bool  `json:"include_expired,omitempty"`
	types.RangeParams
}

type queryNftInfo struct {
	TokenId string `json:"token_id"`
}

type queryTokens struct {
	Owner string `json:"owner"`
	types.RangeParams
}

// ExecuteMsg is the cw721-base execute msg without mint, which is owned by
// the minter contract.
type ExecuteMsg struct {
	TransferNft *transferNftMsg `json:"transfer_nft,omitempty"`
	SendNft     *sendNftMsg     `json:"send_nft,omitempty"`
	Approve     *approveMsg     `json:"approve,omitempty"`
	Revoke      *revokeMsg      `json:"revoke,omitempty"`
	ApproveAll  *approveAllMsg  `json:"approve_all,omitempty"`
	RevokeAll   *revokeAllMsg   `json:"revoke_all,omitempty"`
	Burn        *burnMsg        `json:"burn,omitempty"`
}

type transferNftMsg struct {
	Recipient string `json:"recipient"`
	TokenId   string `json:"token_id"`
}

type sendNftMsg struct {
	Contract string `json:"contract"`
	TokenId  string `json:"token_id"`
	// base64 encoded by encoding/json, as the contract Binary
	Msg []byte `json:"msg"`
}

type approveMsg struct {
	Spender string            `json:"spender"`
	TokenId string            `json:"token_id"`
	Expires *types.Expiration `json:"expires,omitempty"`
}

type revokeMsg struct {
	Spender string `json:"spender"`
	TokenId string `json:"token_id"`
}

type approveAllMsg struct {
	Operator string            `json:"operator"`
	Expires  *types.Expiration `json:"expires,omitempty"`
}

type revokeAllMsg struct {
	Operator string `json:"operator"`
}

type burnMsg struct {
	TokenId string `json:"token_id"`
}

func NewTransferNftMsg(recipient, tokenId string) ExecuteMsg {
	return ExecuteMsg{TransferNft: &transferNftMsg{Recipient: recipient, TokenId: tokenId}}
}

func NewSendNftMsg(contract, tokenId string, msg []byte) ExecuteMsg {
	if msg == nil {
		msg = []byte{}
	}
	return ExecuteMsg{SendNft: &sendNftMsg{Contract: contract, TokenId: tokenId, Msg: msg}}
}

// NewApproveMsg lets spender transfer the token, the marketplace needs it
// before a sale is created or an offer is accepted.
func NewApproveMsg(spender, tokenId string, expires *types.Expiration) ExecuteMsg {
	return ExecuteMsg{Approve: &approveMsg{Spender: spender, TokenId: tokenId, Expires: expires}}
}

func NewRevokeMsg(spender, tokenId string) ExecuteMsg {
	return ExecuteMsg{Revoke: &revokeMsg{Spender: spender, TokenId: tokenId}}
}

func NewApproveAllMsg(operator string, expires *types.Expiration) ExecuteMsg {
	return ExecuteMsg{ApproveAll: &approveAllMsg{Operator: operator, Expires: expires}}
}

func NewRevokeAllMsg(operator string) ExecuteMsg {
	return ExecuteMsg{RevokeAll: &revokeAllMsg{Operator: operator}}
}

func NewBurnMsg(tokenId string) ExecuteMsg {
	return ExecuteMsg{Burn: &burnMsg{TokenId: tokenId}}
}

func includeExpired(v bool) *bool {
	if !v {
		return nil
	}
	return &v
}
