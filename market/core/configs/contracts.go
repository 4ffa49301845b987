package configs

import (
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/core/utils"
	"github.com/alt-research/cw-nft-market/market/types"
)

// ContractsConfig holds the addresses of the deployed contracts, every one
// of them is optional so that a client can be used for a single contract.
type ContractsConfig struct {
	Marketplace  string `yaml:"marketplace,omitempty"`
	Collection   string `yaml:"collection,omitempty"`
	Minter       string `yaml:"minter,omitempty"`
	PaymentToken string `yaml:"payment_token,omitempty"`
}

func (c *ContractsConfig) WithEnv() {
	c.Marketplace = utils.LookupEnvStr("MARKET_MARKETPLACE_CONTRACT", c.Marketplace)
	c.Collection = utils.LookupEnvStr("MARKET_COLLECTION_CONTRACT", c.Collection)
	c.Minter = utils.LookupEnvStr("MARKET_MINTER_CONTRACT", c.Minter)
	c.PaymentToken = utils.LookupEnvStr("MARKET_PAYMENT_TOKEN_CONTRACT", c.PaymentToken)
}

func (c *ContractsConfig) Validate(prefix string) error {
	for name, addr := range map[string]string{
		"marketplace":   c.Marketplace,
		"collection":    c.Collection,
		"minter":        c.Minter,
		"payment_token": c.PaymentToken,
	} {
		if addr == "" {
			continue
		}
		if err := types.ValidateAddress(addr, prefix); err != nil {
			return errors.Wrapf(err, "invalid %s contract address", name)
		}
	}

	return nil
}
