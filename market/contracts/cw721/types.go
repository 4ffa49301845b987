package cw721

import (
	"github.com/alt-research/cw-nft-market/market/types"
)

type Approval struct {
	Spender string           `json:"spender"`
	Expires types.Expiration `json:"expires"`
}

type OwnerOfResponse struct {
	Owner     string     `json:"owner"`
	Approvals []Approval `json:"approvals"`
}

type ApprovalResponse struct {
	Approval Approval `json:"approval"`
}

type ApprovalsResponse struct {
	Approvals []Approval `json:"approvals"`
}

type OperatorsResponse struct {
	Operators []Approval `json:"operators"`
}

type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

type ContractInfoResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Trait is one attribute of the on-chain metadata extension.
type Trait struct {
	DisplayType *string `json:"display_type,omitempty"`
	TraitType   string  `json:"trait_type"`
	Value       string  `json:"value"`
}

// Metadata is the cw721-metadata-onchain extension, it follows the OpenSea
// metadata standard.
type Metadata struct {
	Image           *string `json:"image,omitempty"`
	ImageData       *string `json:"image_data,omitempty"`
	ExternalUrl     *string `json:"external_url,omitempty"`
	Description     *string `json:"description,omitempty"`
	Name            *string `json:"name,omitempty"`
	Attributes      []Trait `json:"attributes,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
	AnimationUrl    *string `json:"animation_url,omitempty"`
	YoutubeUrl      *string `json:"youtube_url,omitempty"`
}

type NftInfoResponse struct {
	TokenUri  *string   `json:"token_uri"`
	Extension *Metadata `json:"extension"`
}

type AllNftInfoResponse struct {
	Access OwnerOfResponse `json:"access"`
	Info   NftInfoResponse `json:"info"`
}

type TokensResponse struct {
	Tokens []string `json:"tokens"`
}

type MinterResponse struct {
	Minter *string `json:"minter"`
}
