package cwclient

import (
	"time"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// QueryConn is a wasm query client with the connection behind it.
type QueryConn struct {
	wasmtypes.QueryClient

	close func() error
}

func (q *QueryConn) Close() error {
	if q.close == nil {
		return nil
	}
	return q.close()
}

func newProtoCodec() *codec.ProtoCodec {
	registry := codectypes.NewInterfaceRegistry()
	wasmtypes.RegisterInterfaces(registry)
	return codec.NewProtoCodec(registry)
}

// NewQueryConnFromRPC queries through abci_query of the cometbft rpc.
func NewQueryConnFromRPC(rpcAddr string, timeout time.Duration) (*QueryConn, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rpcClient, err := rpchttp.NewWithTimeout(rpcAddr, "/websocket", uint(timeout.Seconds()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create rpc client by %s", rpcAddr)
	}

	cdc := newProtoCodec()
	sdkClientCtx := cosmosclient.Context{}.
		WithClient(rpcClient).
		WithCodec(cdc).
		WithInterfaceRegistry(cdc.InterfaceRegistry())

	return &QueryConn{
		QueryClient: wasmtypes.NewQueryClient(sdkClientCtx),
	}, nil
}

// NewQueryConnFromGRPC queries through the node grpc server.
func NewQueryConnFromGRPC(grpcAddr string) (*QueryConn, error) {
	cdc := newProtoCodec()

	conn, err := grpc.NewClient(
		grpcAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(cdc.GRPCCodec())),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial grpc %s", grpcAddr)
	}

	return &QueryConn{
		QueryClient: wasmtypes.NewQueryClient(conn),
		close:       conn.Close,
	}, nil
}
