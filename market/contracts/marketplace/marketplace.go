package marketplace

import (
	"context"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/contracts/cw20"
	"github.com/alt-research/cw-nft-market/market/contracts/cw721"
)

type IMarketplace interface {
	List(ctx context.Context, startAfter string, limit uint32) (*ListResponse, error)
	Details(ctx context.Context, id string) (*Swap, error)
	Config(ctx context.Context) (*Config, error)

	ListForSale(ctx context.Context, msg SwapMsg) (*cwclient.TxResponse, error)
	MakeOffer(ctx context.Context, msg SwapMsg) (*cwclient.TxResponse, error)
	Buy(ctx context.Context, id string) (*cwclient.TxResponse, error)
	AcceptOffer(ctx context.Context, id string) (*cwclient.TxResponse, error)
	Cancel(ctx context.Context, id string) (*cwclient.TxResponse, error)
}

var _ IMarketplace = &Marketplace{}

// Marketplace is the client of the nft marketplace contract.
type Marketplace struct {
	client cwclient.ICosmosWasmContractClient
	prefix string
}

func New(client cwclient.ICosmosWasmContractClient, prefix string) *Marketplace {
	return &Marketplace{
		client: client,
		prefix: prefix,
	}
}

func (m *Marketplace) Address() string {
	return m.client.ContractAddress()
}

// cw721Request is a msg to the nft contract sent in a marketplace tx.
func cw721Request(contract string, msg cw721.ExecuteMsg) cwclient.ExecuteRequest {
	return cwclient.ExecuteRequest{Contract: contract, Msg: msg}
}

func cw20Request(contract string, msg cw20.ExecuteMsg) cwclient.ExecuteRequest {
	return cwclient.ExecuteRequest{Contract: contract, Msg: msg}
}
