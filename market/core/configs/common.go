package configs

import "github.com/alt-research/cw-nft-market/market/core/utils"

type CommonConfig struct {
	// The service name
	Name string `yaml:"name"`
	// used to set the logger level (true = info, false = debug)
	Production bool `yaml:"production"`
}

// use the env config first for some keys
func (c *CommonConfig) WithEnv() {
	c.Production = utils.LookupEnvBool("MARKET_PRODUCTION", c.Production)
	c.Name = utils.LookupEnvStr("MARKET_NAME", c.Name)
}
