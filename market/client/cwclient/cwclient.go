package cwclient

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/metrics"
	"github.com/alt-research/cw-nft-market/market/types"
)

var _ ICosmosWasmContractClient = &CosmWasmClient{}

const (
	// hardcode the timeout to 20 seconds. We can expose it to the params once needed
	DefaultTimeout = 20 * time.Second
)

// CosmWasmClient sends smart queries and execute msgs to one contract.
type CosmWasmClient struct {
	logger logging.Logger

	querier     wasmtypes.QueryClient
	broadcaster Broadcaster
	journal     TxJournal
	metrics     *metrics.ClientMetrics

	sender       string
	label        string
	contractAddr string
	timeout      time.Duration
}

type Option func(*CosmWasmClient)

// WithBroadcaster makes the client able to execute msgs signed by sender.
func WithBroadcaster(broadcaster Broadcaster, sender string) Option {
	return func(c *CosmWasmClient) {
		c.broadcaster = broadcaster
		c.sender = sender
	}
}

func WithJournal(journal TxJournal) Option {
	return func(c *CosmWasmClient) {
		c.journal = journal
	}
}

func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *CosmWasmClient) {
		c.metrics = m
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *CosmWasmClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func NewCosmWasmClient(
	logger logging.Logger,
	querier wasmtypes.QueryClient,
	label string,
	contractAddr string,
	opts ...Option,
) *CosmWasmClient {
	c := &CosmWasmClient{
		logger:       logger.With("contract", label),
		querier:      querier,
		label:        label,
		contractAddr: contractAddr,
		timeout:      DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithContract returns a client for another contract sharing the transport.
func (c *CosmWasmClient) WithContract(label string, contractAddr string) *CosmWasmClient {
	n := *c
	n.label = label
	n.contractAddr = contractAddr
	n.logger = c.logger.With("contract", label)
	return &n
}

func (c *CosmWasmClient) ContractAddress() string {
	return c.contractAddr
}

func (c *CosmWasmClient) Sender() string {
	return c.sender
}

func (c *CosmWasmClient) Label() string {
	return c.label
}

func (c *CosmWasmClient) CanExecute() bool {
	return c.broadcaster != nil && c.sender != ""
}

// QuerySmartContractState marshals query, sends it as a smart query to the
// contract and unmarshals the response data into resp.
func (c *CosmWasmClient) QuerySmartContractState(
	ctx context.Context,
	query any,
	resp any,
) (err error) {
	queryData, err := json.Marshal(query)
	if err != nil {
		return errors.Wrap(err, "marshal query msg failed")
	}

	name := ActionOf(queryData)
	defer func() {
		c.metrics.RecordQuery(c.label, name, err)
	}()

	if c.contractAddr == "" {
		return errorsmod.Wrapf(types.ErrNoContract, "%s query %s", c.label, name)
	}

	return c.querySmartContractState(ctx, name, queryData, resp)
}

// querySmartContractState queries the smart contract state given the contract address and query data
func (c *CosmWasmClient) querySmartContractState(
	ctx context.Context,
	name string,
	queryData []byte,
	resp any,
) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug("query smart contract", "query", name, "data", string(queryData))

	req := &wasmtypes.QuerySmartContractStateRequest{
		Address:   c.contractAddr,
		QueryData: queryData,
	}
	respData, err := c.querier.SmartContractState(ctx, req)
	if err != nil {
		if isNotFound(err) {
			return errorsmod.Wrapf(types.ErrNotFound, "query smart contract state %s failed: %v", name, err)
		}
		return errors.Wrapf(err, "query smart contract state %s failed", name)
	}

	if err := json.Unmarshal(respData.Data, resp); err != nil {
		return errors.Wrapf(err, "unmarshal smart contract state %s failed", name)
	}

	return nil
}

// isNotFound reports if the query failed on a missing key or contract, which
// the chain returns as a grpc NotFound or as a contract "not found" error.
func isNotFound(err error) bool {
	msg := err.Error()
	if st, ok := status.FromError(err); ok {
		if st.Code() == codes.NotFound {
			return true
		}
		msg = st.Message()
	}

	return strings.Contains(strings.ToLower(msg), "not found")
}
