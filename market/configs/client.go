package configs

import (
	"time"

	"github.com/pkg/errors"

	commonConfig "github.com/alt-research/cw-nft-market/market/core/configs"
	"github.com/alt-research/cw-nft-market/market/core/utils"
	"github.com/alt-research/cw-nft-market/market/metrics"
)

const defaultMetadataRetries = 3

var defaultIpfsGateways = []string{
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://gateway.pinata.cloud/ipfs/",
}

type MetadataConfig struct {
	IpfsGateways []string      `yaml:"ipfs_gateways,omitempty"`
	Timeout      time.Duration `yaml:"timeout,omitempty"`
	// Retries after the first attempt, 0 disables the retries
	Retries  *int          `yaml:"retries,omitempty"`
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`
}

func (c *MetadataConfig) WithEnv() {
	c.IpfsGateways = utils.LookupEnvList("MARKET_IPFS_GATEWAYS", c.IpfsGateways)
	c.Timeout = utils.LookupEnvDuration("MARKET_METADATA_TIMEOUT", c.Timeout)
	if utils.HasEnv("MARKET_METADATA_RETRIES") {
		retries := int(utils.LookupEnvUint64("MARKET_METADATA_RETRIES", 0))
		c.Retries = &retries
	}
}

func (c *MetadataConfig) WithDefaults() {
	if len(c.IpfsGateways) == 0 {
		c.IpfsGateways = defaultIpfsGateways
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Retries == nil {
		retries := defaultMetadataRetries
		c.Retries = &retries
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
}

type JournalConfig struct {
	// The path of the local tx journal db, disabled if empty
	Path    string        `yaml:"path,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

func (c *JournalConfig) WithEnv() {
	c.Path = utils.LookupEnvStr("MARKET_JOURNAL_PATH", c.Path)
}

type ServerConfig struct {
	ListenAddress string   `yaml:"listen_address"`
	Cors          []string `yaml:"cors,omitempty"`
}

func (c *ServerConfig) WithEnv() {
	c.ListenAddress = utils.LookupEnvStr("MARKET_SERVER_LISTEN_ADDR", c.ListenAddress)
	c.Cors = utils.LookupEnvList("MARKET_SERVER_CORS", c.Cors)
}

type ClientConfig struct {
	Common    commonConfig.CommonConfig    `yaml:"common"`
	Chain     commonConfig.ChainConfig     `yaml:"chain"`
	Contracts commonConfig.ContractsConfig `yaml:"contracts"`
	Metadata  MetadataConfig               `yaml:"metadata"`
	Journal   JournalConfig                `yaml:"journal"`
	Server    ServerConfig                 `yaml:"server"`
	Metrics   metrics.Config               `yaml:"metrics"`
}

// use the env config first for some keys
func (c *ClientConfig) WithEnv() {
	c.Common.WithEnv()
	c.Chain.WithEnv()
	c.Contracts.WithEnv()
	c.Metadata.WithEnv()
	c.Journal.WithEnv()
	c.Server.WithEnv()
	c.Metrics.WithEnv()
}

func (c *ClientConfig) WithDefaults() {
	c.Chain.WithDefaults()
	c.Metadata.WithDefaults()
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = "127.0.0.1:8545"
	}
	c.Metrics.WithDefaults()
}

func (c *ClientConfig) Validate() error {
	if err := c.Chain.Validate(); err != nil {
		return errors.Wrap(err, "invalid chain config")
	}

	if err := c.Contracts.Validate(c.Chain.AccountPrefix); err != nil {
		return errors.Wrap(err, "invalid contracts config")
	}

	return nil
}
