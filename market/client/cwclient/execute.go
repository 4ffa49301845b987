package cwclient

import (
	"context"
	"encoding/json"
	"time"

	errorsmod "cosmossdk.io/errors"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"github.com/cosmos/relayer/v2/relayer/provider"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/client/journal"
	"github.com/alt-research/cw-nft-market/market/types"
)

// ExecuteRequest is one execute msg of a tx. An empty Contract means the
// contract of the client sending it.
type ExecuteRequest struct {
	Contract string
	Msg      any
	Funds    sdk.Coins
}

type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

type TxResponse struct {
	Height    int64   `json:"height"`
	TxHash    string  `json:"tx_hash"`
	Code      uint32  `json:"code"`
	Codespace string  `json:"codespace,omitempty"`
	Events    []Event `json:"events,omitempty"`
}

// FindAttribute returns the first value of key in the events of eventType.
func (t *TxResponse) FindAttribute(eventType, key string) (string, bool) {
	if t == nil {
		return "", false
	}

	for _, e := range t.Events {
		if e.Type != eventType {
			continue
		}
		if v, ok := e.Attributes[key]; ok {
			return v, true
		}
	}

	return "", false
}

func newTxResponse(res *provider.RelayerTxResponse) *TxResponse {
	events := make([]Event, 0, len(res.Events))
	for _, e := range res.Events {
		events = append(events, Event{
			Type:       e.EventType,
			Attributes: e.Attributes,
		})
	}

	return &TxResponse{
		Height:    res.Height,
		TxHash:    res.TxHash,
		Code:      res.Code,
		Codespace: res.Codespace,
		Events:    events,
	}
}

// Execute sends msg to the client's contract with funds attached.
func (c *CosmWasmClient) Execute(ctx context.Context, msg any, funds sdk.Coins) (*TxResponse, error) {
	return c.ExecuteMulti(ctx, "", ExecuteRequest{Msg: msg, Funds: funds})
}

func (c *CosmWasmClient) buildExecuteMsg(req ExecuteRequest) (*wasmtypes.MsgExecuteContract, string, error) {
	contract := req.Contract
	if contract == "" {
		contract = c.contractAddr
	}
	if contract == "" {
		return nil, "", errorsmod.Wrapf(types.ErrNoContract, "%s execute", c.label)
	}

	execMsg, err := json.Marshal(req.Msg)
	if err != nil {
		return nil, "", errors.Wrap(err, "marshal execute msg failed")
	}

	if !req.Funds.Empty() {
		if err := req.Funds.Validate(); err != nil {
			return nil, "", errorsmod.Wrapf(types.ErrInvalidFunds, "%s: %v", req.Funds, err)
		}
	}

	return &wasmtypes.MsgExecuteContract{
		Sender:   c.sender,
		Contract: contract,
		Msg:      execMsg,
		Funds:    req.Funds,
	}, ActionOf(execMsg), nil
}

// ExecuteMulti sends all reqs in one tx, they are executed in order and
// the tx fails as a whole if one of them fails.
func (c *CosmWasmClient) ExecuteMulti(ctx context.Context, memo string, reqs ...ExecuteRequest) (*TxResponse, error) {
	if !c.CanExecute() {
		return nil, errorsmod.Wrapf(types.ErrReadOnly, "%s execute", c.label)
	}
	if len(reqs) == 0 {
		return nil, errors.New("no execute msg to send")
	}

	msgs := make([]provider.RelayerMessage, 0, len(reqs))
	contracts := make([]string, 0, len(reqs))
	actions := make([]string, 0, len(reqs))
	for _, req := range reqs {
		msg, action, err := c.buildExecuteMsg(req)
		if err != nil {
			return nil, err
		}

		c.logger.Info(
			"execute contract",
			"action", action,
			"contract", msg.Contract,
			"funds", msg.Funds.String(),
		)

		msgs = append(msgs, cosmos.NewCosmosMessage(msg, nil))
		contracts = append(contracts, msg.Contract)
		actions = append(actions, action)
	}

	res, success, err := c.broadcaster.SendMessages(ctx, msgs, memo)

	if res != nil {
		c.recordJournal(res, contracts, actions, memo)
	}

	err = c.checkTxResult(res, success, err)
	for _, action := range actions {
		c.metrics.RecordExecute(c.label, action, err)
	}
	if err != nil {
		return nilIfEmpty(res), err
	}

	c.logger.Info(
		"execute contract resp",
		"Height", res.Height,
		"TxHash", res.TxHash,
		"actions", actions,
	)

	return newTxResponse(res), nil
}

func nilIfEmpty(res *provider.RelayerTxResponse) *TxResponse {
	if res == nil {
		return nil
	}
	return newTxResponse(res)
}

func (c *CosmWasmClient) checkTxResult(res *provider.RelayerTxResponse, success bool, err error) error {
	// the chain error is more useful than the relayer wrapping
	if res != nil && res.Code != 0 {
		return errors.Wrapf(
			errorsmod.ABCIError(res.Codespace, res.Code, "execute contract"),
			"tx %s failed at height %d", res.TxHash, res.Height,
		)
	}

	if err != nil {
		return errors.Wrap(err, "send execute msgs failed")
	}

	if res == nil {
		return errorsmod.Wrap(types.ErrTxFailed, "no tx response")
	}

	if !success {
		return errorsmod.Wrapf(types.ErrTxFailed, "tx %s not successful", res.TxHash)
	}

	return nil
}

func (c *CosmWasmClient) recordJournal(res *provider.RelayerTxResponse, contracts, actions []string, memo string) {
	if c.journal == nil {
		return
	}

	err := c.journal.Record(&journal.Record{
		TxHash:    res.TxHash,
		Height:    res.Height,
		Sender:    c.sender,
		Contracts: contracts,
		Actions:   actions,
		Code:      res.Code,
		Codespace: res.Codespace,
		Memo:      memo,
		Time:      time.Now().UTC(),
	})
	if err != nil {
		c.logger.Warn("record tx to journal failed", "tx", res.TxHash, "err", err)
	}
}
