package client

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/alt-research/cw-nft-market/market/client/cosmosprovider"
	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/client/journal"
	"github.com/alt-research/cw-nft-market/market/configs"
	"github.com/alt-research/cw-nft-market/market/contracts/cw20"
	"github.com/alt-research/cw-nft-market/market/contracts/cw721"
	"github.com/alt-research/cw-nft-market/market/contracts/marketplace"
	"github.com/alt-research/cw-nft-market/market/contracts/minter"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/metadata"
	"github.com/alt-research/cw-nft-market/market/metrics"
	"github.com/alt-research/cw-nft-market/market/types"
)

type options struct {
	broadcaster cwclient.Broadcaster
	sender      string
	balances    BalanceQuerier
	journal     *journal.Journal
	metrics     *metrics.ClientMetrics
}

type Option func(*options)

// WithSigner makes the contract clients able to execute msgs.
func WithSigner(broadcaster cwclient.Broadcaster, sender string) Option {
	return func(o *options) {
		o.broadcaster = broadcaster
		o.sender = sender
	}
}

func WithBalanceQuerier(q BalanceQuerier) Option {
	return func(o *options) {
		o.balances = q
	}
}

func WithJournal(j *journal.Journal) Option {
	return func(o *options) {
		o.journal = j
	}
}

func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// SdkClient is the client of the market contracts. Without a key in the
// chain config it can only perform queries.
type SdkClient struct {
	logger logging.Logger
	config *configs.ClientConfig

	sender   string
	balances BalanceQuerier
	journal  *journal.Journal
	metrics  *metrics.ClientMetrics
	closers  []func() error

	marketplace  *marketplace.Marketplace
	collection   *cw721.Collection
	minter       *minter.Minter
	paymentToken *cw20.Token
	metadata     *metadata.Resolver
}

// NewClient connects to the chain of config, with a signer when a key is set.
func NewClient(ctx context.Context, config *configs.ClientConfig, zapLogger *zap.Logger, opts ...Option) (*SdkClient, error) {
	config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := logging.FromZap(zapLogger)

	var (
		conn *cwclient.QueryConn
		err  error
	)
	if config.Chain.GRPCAddr != "" {
		conn, err = cwclient.NewQueryConnFromGRPC(config.Chain.GRPCAddr)
	} else {
		conn, err = cwclient.NewQueryConnFromRPC(config.Chain.RPCAddr, config.Chain.Timeout)
	}
	if err != nil {
		return nil, err
	}
	closers := []func() error{conn.Close}

	if config.Chain.HasSigner() {
		cp, err := cosmosprovider.NewCosmosProvider(ctx, &config.Chain, zapLogger)
		if err != nil {
			_ = conn.Close()
			return nil, errors.Wrap(err, "failed to create cosmos provider")
		}

		sender, err := cp.ShowAddress(config.Chain.Key)
		if err != nil {
			_ = conn.Close()
			return nil, errors.Wrapf(err, "failed to get the address of key %s", config.Chain.Key)
		}

		opts = append([]Option{WithSigner(cp, sender), WithBalanceQuerier(cp)}, opts...)
	}

	if config.Journal.Path != "" {
		j, err := journal.Open(config.Journal.Path, config.Journal.Timeout)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		closers = append(closers, j.Close)
		opts = append([]Option{WithJournal(j)}, opts...)
	}

	c := NewClientWithQuerier(logger, config, conn, opts...)
	c.closers = append(c.closers, closers...)

	return c, nil
}

// NewClientWithQuerier builds the client over an existing query transport.
func NewClientWithQuerier(
	logger logging.Logger,
	config *configs.ClientConfig,
	querier wasmtypes.QueryClient,
	opts ...Option,
) *SdkClient {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cwOpts := []cwclient.Option{
		cwclient.WithTimeout(config.Chain.Timeout),
		cwclient.WithMetrics(o.metrics),
	}
	if o.broadcaster != nil {
		cwOpts = append(cwOpts, cwclient.WithBroadcaster(o.broadcaster, o.sender))
	}
	if o.journal != nil {
		cwOpts = append(cwOpts, cwclient.WithJournal(o.journal))
	}

	base := cwclient.NewCosmWasmClient(logger, querier, "marketplace", config.Contracts.Marketplace, cwOpts...)
	prefix := config.Chain.AccountPrefix

	return &SdkClient{
		logger:   logger,
		config:   config,
		sender:   o.sender,
		balances: o.balances,
		journal:  o.journal,
		metrics:  o.metrics,

		marketplace:  marketplace.New(base, prefix),
		collection:   cw721.New(base.WithContract("collection", config.Contracts.Collection), prefix),
		minter:       minter.New(base.WithContract("minter", config.Contracts.Minter), prefix),
		paymentToken: cw20.New(base.WithContract("payment_token", config.Contracts.PaymentToken), prefix),
		metadata:     metadata.NewResolver(logger, config.Metadata),
	}
}

func (c *SdkClient) Marketplace() *marketplace.Marketplace {
	return c.marketplace
}

func (c *SdkClient) Collection() *cw721.Collection {
	return c.collection
}

func (c *SdkClient) Minter() *minter.Minter {
	return c.minter
}

func (c *SdkClient) PaymentToken() *cw20.Token {
	return c.paymentToken
}

func (c *SdkClient) Metadata() *metadata.Resolver {
	return c.metadata
}

func (c *SdkClient) Journal() *journal.Journal {
	return c.journal
}

// Sender is the address signing the txs, empty for a read only client.
func (c *SdkClient) Sender() string {
	return c.sender
}

// SenderBalance queries the bank balances of the sender and exports them
// to the balance gauge.
func (c *SdkClient) SenderBalance(ctx context.Context) (sdk.Coins, error) {
	if c.balances == nil || c.sender == "" {
		return nil, errorsmod.Wrap(types.ErrReadOnly, "sender balance")
	}

	coins, err := c.balances.QueryBalanceWithAddress(ctx, c.sender)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query balance of %s", c.sender)
	}

	for _, coin := range coins {
		amount, err := coin.Amount.ToLegacyDec().Float64()
		if err != nil {
			c.logger.Warn("balance overflows float64", "denom", coin.Denom, "err", err)
			continue
		}
		c.metrics.RecordSenderBalance(c.sender, coin.Denom, amount)
	}

	return coins, nil
}

// WatchSenderBalance refreshes the balance gauge every interval until ctx
// is done.
func (c *SdkClient) WatchSenderBalance(ctx context.Context, interval time.Duration) {
	if c.balances == nil || c.sender == "" || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := c.SenderBalance(ctx); err != nil {
			c.logger.Warn("update sender balance failed", "err", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// TokenMetadata is the metadata of a token, from the off-chain token uri
// when set or else from the on-chain extension.
type TokenMetadata struct {
	TokenId  string          `json:"token_id"`
	TokenUri *string         `json:"token_uri,omitempty"`
	Metadata *cw721.Metadata `json:"metadata"`
}

func (c *SdkClient) TokenMetadata(ctx context.Context, tokenId string) (*TokenMetadata, error) {
	info, err := c.collection.NftInfo(ctx, tokenId)
	if err != nil {
		return nil, err
	}

	res := &TokenMetadata{
		TokenId:  tokenId,
		TokenUri: info.TokenUri,
		Metadata: info.Extension,
	}

	if info.TokenUri != nil && *info.TokenUri != "" {
		md, err := c.metadata.Resolve(ctx, *info.TokenUri)
		if err != nil {
			if info.Extension == nil {
				return nil, err
			}
			c.logger.Warn("resolve token uri failed, use the on-chain metadata", "token", tokenId, "err", err)
		} else {
			res.Metadata = md
		}
	}

	return res, nil
}

func (c *SdkClient) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
