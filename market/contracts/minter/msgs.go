package minter

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/alt-research/cw-nft-market/market/types"
)

// Config is the minter contract config.
type Config struct {
	Admin string `json:"admin"`
	// the cw721 collection the minter mints into
	Cw721           string   `json:"cw721"`
	Price           sdk.Coin `json:"price"`
	MaxSupply       uint64   `json:"max_supply"`
	PerAddressLimit uint32   `json:"per_address_limit"`
	WhitelistOnly   bool     `json:"whitelist_only"`
	BaseUri         string   `json:"base_uri"`
	PlaceholderUri  string   `json:"placeholder_uri"`
}

type IsWhitelistedResponse struct {
	Whitelisted bool `json:"whitelisted"`
}

type WhitelistResponse struct {
	Addresses []string `json:"addresses"`
}

type CountResponse struct {
	Count uint64 `json:"count"`
}

type QueryMsg struct {
	Config        *queryEmpty        `json:"config,omitempty"`
	IsWhitelisted *queryAddress      `json:"is_whitelisted,omitempty"`
	Whitelist     *types.RangeParams `json:"whitelist,omitempty"`
	MintCount     *queryAddress      `json:"mint_count,omitempty"`
	TotalMinted   *queryEmpty        `json:"total_minted,omitempty"`
}

type queryEmpty struct{}

type queryAddress struct {
	Address string `json:"address"`
}

type ExecuteMsg struct {
	Mint                *mintMsg         `json:"mint,omitempty"`
	Reveal              *revealMsg       `json:"reveal,omitempty"`
	AddToWhitelist      *addressesMsg    `json:"add_to_whitelist,omitempty"`
	RemoveFromWhitelist *addressesMsg    `json:"remove_from_whitelist,omitempty"`
	UpdateConfig        *UpdateConfigMsg `json:"update_config,omitempty"`
	Withdraw            *withdrawMsg     `json:"withdraw,omitempty"`
}

type mintMsg struct{}

type revealMsg struct {
	TokenId string `json:"token_id"`
}

type addressesMsg struct {
	Addresses []string `json:"addresses"`
}

// UpdateConfigMsg changes the set fields of the config, only the admin can
// send it.
type UpdateConfigMsg struct {
	Admin           *string   `json:"admin,omitempty"`
	Price           *sdk.Coin `json:"price,omitempty"`
	PerAddressLimit *uint32   `json:"per_address_limit,omitempty"`
	WhitelistOnly   *bool     `json:"whitelist_only,omitempty"`
	BaseUri         *string   `json:"base_uri,omitempty"`
}

func (m UpdateConfigMsg) isEmpty() bool {
	return m.Admin == nil &&
		m.Price == nil &&
		m.PerAddressLimit == nil &&
		m.WhitelistOnly == nil &&
		m.BaseUri == nil
}

type withdrawMsg struct {
	Amount types.Uint128 `json:"amount"`
	Denom  string        `json:"denom"`
}
