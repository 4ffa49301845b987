package mocks

import (
	"context"
	"encoding/json"
	"sync"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"github.com/cosmos/relayer/v2/relayer/provider"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// SmartQuery is a query received by the MockQueryClient.
type SmartQuery struct {
	Contract string
	Data     json.RawMessage
}

// MockQueryClient answers smart queries from canned responses keyed by the
// query variant name.
type MockQueryClient struct {
	wasmtypes.QueryClient

	mu        sync.Mutex
	responses map[string]any
	errs      map[string]error
	Queries   []SmartQuery
}

func NewMockQueryClient() *MockQueryClient {
	return &MockQueryClient{
		responses: make(map[string]any),
		errs:      make(map[string]error),
	}
}

// Respond sets the json response of the query variant.
func (m *MockQueryClient) Respond(variant string, resp any) *MockQueryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[variant] = resp
	return m
}

// Fail makes the query variant return err.
func (m *MockQueryClient) Fail(variant string, err error) *MockQueryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[variant] = err
	return m
}

// LastQuery returns the last received query.
func (m *MockQueryClient) LastQuery() SmartQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Queries) == 0 {
		return SmartQuery{}
	}
	return m.Queries[len(m.Queries)-1]
}

func (m *MockQueryClient) SmartContractState(
	_ context.Context,
	req *wasmtypes.QuerySmartContractStateRequest,
	_ ...grpc.CallOption,
) (*wasmtypes.QuerySmartContractStateResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Queries = append(m.Queries, SmartQuery{
		Contract: req.Address,
		Data:     json.RawMessage(req.QueryData),
	})

	var variants map[string]json.RawMessage
	if err := json.Unmarshal(req.QueryData, &variants); err != nil {
		return nil, errors.Wrap(err, "invalid query")
	}

	for variant := range variants {
		if err, ok := m.errs[variant]; ok {
			return nil, err
		}

		resp, ok := m.responses[variant]
		if !ok {
			continue
		}

		bz, err := json.Marshal(resp)
		if err != nil {
			return nil, err
		}
		return &wasmtypes.QuerySmartContractStateResponse{Data: bz}, nil
	}

	return nil, errors.Errorf("no mock response for query %s", string(req.QueryData))
}

// MockBroadcaster records the msgs it is asked to send.
type MockBroadcaster struct {
	mu sync.Mutex

	Sent     [][]*wasmtypes.MsgExecuteContract
	Memos    []string
	Response *provider.RelayerTxResponse
	Success  bool
	Err      error
}

func NewMockBroadcaster() *MockBroadcaster {
	return &MockBroadcaster{
		Response: &provider.RelayerTxResponse{
			Height: 100,
			TxHash: "D5F5A7E3C1B0",
		},
		Success: true,
	}
}

func (m *MockBroadcaster) SendMessages(
	_ context.Context,
	msgs []provider.RelayerMessage,
	memo string,
) (*provider.RelayerTxResponse, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	execMsgs := make([]*wasmtypes.MsgExecuteContract, 0, len(msgs))
	for _, msg := range msgs {
		execMsg, ok := cosmos.CosmosMsg(msg).(*wasmtypes.MsgExecuteContract)
		if !ok {
			return nil, false, errors.Errorf("unexpected msg type %T", msg)
		}
		execMsgs = append(execMsgs, execMsg)
	}

	m.Sent = append(m.Sent, execMsgs)
	m.Memos = append(m.Memos, memo)

	return m.Response, m.Success, m.Err
}

// LastTx returns the msgs of the last sent tx.
func (m *MockBroadcaster) LastTx() []*wasmtypes.MsgExecuteContract {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	return m.Sent[len(m.Sent)-1]
}
