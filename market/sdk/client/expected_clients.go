package client

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BalanceQuerier queries the bank balances, implemented by the cosmos provider.
type BalanceQuerier interface {
	QueryBalanceWithAddress(ctx context.Context, address string) (sdk.Coins, error)
}
