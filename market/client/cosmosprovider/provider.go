package cosmosprovider

import (
	"context"
	"sort"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/alt-research/cw-nft-market/market/core/configs"
)

const (
	DefaultCoinType         = uint32(118)
	DefaultSigningAlgorithm = "secp256k1"
)

// NewCosmosProvider creates the relayer cosmos provider signing and
// broadcasting the market txs with the key of cfg.
func NewCosmosProvider(ctx context.Context, cfg *configs.ChainConfig, zaplogger *zap.Logger) (*cosmos.CosmosProvider, error) {
	// ensure cfg is valid
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := cfg.ToCosmosProviderConfig().NewProvider(
		zaplogger,
		cfg.KeyDirectory,
		cfg.Debug,
		cfg.ChainID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cosmos provider")
	}

	cp, ok := provider.(*cosmos.CosmosProvider)
	if !ok {
		return nil, errors.New("failed to cast provider to CosmosProvider")
	}
	cp.PCfg.KeyDirectory = cfg.KeyDirectory
	wasmtypes.RegisterInterfaces(cp.Cdc.InterfaceRegistry)

	// initialise Cosmos provider
	// NOTE: this will create a RPC client. The RPC client will be used for
	// submitting txs and making ad hoc queries. It won't create WebSocket
	// connection with wasmd node
	if err = cp.Init(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to initialize cosmos provider")
	}

	return cp, nil
}

// KeyInfo is a key of the keyring.
type KeyInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

// Keys manages the signing keys in the keyring of the provider.
type Keys struct {
	cp *cosmos.CosmosProvider
}

func NewKeys(cp *cosmos.CosmosProvider) *Keys {
	return &Keys{cp: cp}
}

// Add creates a new key, the mnemonic is only returned here.
func (k *Keys) Add(name string) (*KeyInfo, error) {
	if k.cp.KeyExists(name) {
		return nil, errors.Errorf("key %s already exists", name)
	}

	out, err := k.cp.AddKey(name, DefaultCoinType, DefaultSigningAlgorithm)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add key %s", name)
	}

	return &KeyInfo{Name: name, Address: out.Address, Mnemonic: out.Mnemonic}, nil
}

func (k *Keys) Restore(name, mnemonic string) (*KeyInfo, error) {
	if k.cp.KeyExists(name) {
		return nil, errors.Errorf("key %s already exists", name)
	}

	addr, err := k.cp.RestoreKey(name, mnemonic, DefaultCoinType, DefaultSigningAlgorithm)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to restore key %s", name)
	}

	return &KeyInfo{Name: name, Address: addr}, nil
}

func (k *Keys) Show(name string) (*KeyInfo, error) {
	addr, err := k.cp.ShowAddress(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to show key %s", name)
	}

	return &KeyInfo{Name: name, Address: addr}, nil
}

func (k *Keys) List() ([]KeyInfo, error) {
	addrs, err := k.cp.ListAddresses()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}

	keys := make([]KeyInfo, 0, len(addrs))
	for name, addr := range addrs {
		keys = append(keys, KeyInfo{Name: name, Address: addr})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Name < keys[j].Name })

	return keys, nil
}
