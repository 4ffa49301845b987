package configs

import (
	"time"

	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/core/utils"
)

const (
	defaultGasAdjustment  = 1.5
	defaultTimeout        = 20 * time.Second
	defaultBlockTimeout   = time.Minute
	defaultKeyringBackend = "test"
	defaultSignMode       = "direct"
)

// ChainConfig is the connection and signing config for the wasm chain.
type ChainConfig struct {
	ChainID string `yaml:"chain_id"`
	// The cometbft rpc address, used for queries and broadcasting txs
	RPCAddr string `yaml:"rpc_address"`
	// The optional grpc address, queries go through grpc when it is set
	GRPCAddr      string `yaml:"grpc_address,omitempty"`
	AccountPrefix string `yaml:"account_prefix"`
	// The key name in keyring used to sign the txs, no signer if empty
	Key            string        `yaml:"key,omitempty"`
	KeyringBackend string        `yaml:"keyring_backend,omitempty"`
	KeyDirectory   string        `yaml:"key_directory,omitempty"`
	GasAdjustment  float64       `yaml:"gas_adjustment,omitempty"`
	GasPrices      string        `yaml:"gas_prices,omitempty"`
	Timeout        time.Duration `yaml:"timeout,omitempty"`
	BlockTimeout   time.Duration `yaml:"block_timeout,omitempty"`
	SignMode       string        `yaml:"sign_mode,omitempty"`
	Debug          bool          `yaml:"debug,omitempty"`
}

func (c *ChainConfig) WithEnv() {
	c.ChainID = utils.LookupEnvStr("MARKET_CHAIN_ID", c.ChainID)
	c.RPCAddr = utils.LookupEnvStr("MARKET_RPC_ADDR", c.RPCAddr)
	c.GRPCAddr = utils.LookupEnvStr("MARKET_GRPC_ADDR", c.GRPCAddr)
	c.AccountPrefix = utils.LookupEnvStr("MARKET_ACCOUNT_PREFIX", c.AccountPrefix)
	c.Key = utils.LookupEnvStr("MARKET_KEY", c.Key)
	c.KeyringBackend = utils.LookupEnvStr("MARKET_KEYRING_BACKEND", c.KeyringBackend)
	c.KeyDirectory = utils.LookupEnvStr("MARKET_KEY_DIRECTORY", c.KeyDirectory)
	c.GasAdjustment = utils.LookupEnvFloat64("MARKET_GAS_ADJUSTMENT", c.GasAdjustment)
	c.GasPrices = utils.LookupEnvStr("MARKET_GAS_PRICES", c.GasPrices)
	c.Timeout = utils.LookupEnvDuration("MARKET_TIMEOUT", c.Timeout)
}

// WithDefaults fills the optional fields which are not set.
func (c *ChainConfig) WithDefaults() {
	if c.GasAdjustment == 0 {
		c.GasAdjustment = defaultGasAdjustment
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.BlockTimeout == 0 {
		c.BlockTimeout = defaultBlockTimeout
	}
	if c.KeyringBackend == "" {
		c.KeyringBackend = defaultKeyringBackend
	}
	if c.SignMode == "" {
		c.SignMode = defaultSignMode
	}
}

func (c *ChainConfig) Validate() error {
	if c.ChainID == "" {
		return errors.New("chain_id is required")
	}
	if c.RPCAddr == "" {
		return errors.New("rpc_address is required")
	}
	if c.AccountPrefix == "" {
		return errors.New("account_prefix is required")
	}
	if c.GasAdjustment < 0 {
		return errors.Errorf("invalid gas_adjustment %v", c.GasAdjustment)
	}

	return nil
}

// HasSigner reports if a key is configured, without it the client is read only.
func (c *ChainConfig) HasSigner() bool {
	return c.Key != ""
}

func (c *ChainConfig) ToCosmosProviderConfig() cosmos.CosmosProviderConfig {
	return cosmos.CosmosProviderConfig{
		Key:            c.Key,
		ChainID:        c.ChainID,
		RPCAddr:        c.RPCAddr,
		AccountPrefix:  c.AccountPrefix,
		KeyringBackend: c.KeyringBackend,
		GasAdjustment:  c.GasAdjustment,
		GasPrices:      c.GasPrices,
		KeyDirectory:   c.KeyDirectory,
		Debug:          c.Debug,
		Timeout:        c.Timeout.String(),
		BlockTimeout:   c.BlockTimeout.String(),
		OutputFormat:   "json",
		SignModeStr:    c.SignMode,
	}
}
