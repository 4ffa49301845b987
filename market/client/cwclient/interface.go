package cwclient

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/relayer/v2/relayer/provider"

	"github.com/alt-research/cw-nft-market/market/client/journal"
)

// Broadcaster signs and broadcasts the msgs in one tx, it is implemented by
// the relayer's cosmos provider.
type Broadcaster interface {
	SendMessages(
		ctx context.Context,
		msgs []provider.RelayerMessage,
		memo string,
	) (*provider.RelayerTxResponse, bool, error)
}

// TxJournal keeps a local record of the txs sent.
type TxJournal interface {
	Record(r *journal.Record) error
}

type ICosmosWasmContractClient interface {
	QuerySmartContractState(ctx context.Context, query any, resp any) error
	Execute(ctx context.Context, msg any, funds sdk.Coins) (*TxResponse, error)
	ExecuteMulti(ctx context.Context, memo string, reqs ...ExecuteRequest) (*TxResponse, error)
	ContractAddress() string
	Sender() string
}
