package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the errors raised by this client before a
// message ever reaches the chain.
const ModuleName = "market"

var (
	ErrInvalidAddress    = errorsmod.Register(ModuleName, 2, "invalid address")
	ErrInvalidPrice      = errorsmod.Register(ModuleName, 3, "invalid price")
	ErrInvalidExpiration = errorsmod.Register(ModuleName, 4, "invalid expiration")
	ErrEmptyId           = errorsmod.Register(ModuleName, 5, "empty id")
	ErrReadOnly          = errorsmod.Register(ModuleName, 6, "client has no signer")
	ErrTxFailed          = errorsmod.Register(ModuleName, 7, "transaction failed")
	ErrInvalidFunds      = errorsmod.Register(ModuleName, 8, "invalid funds")
	ErrNoContract        = errorsmod.Register(ModuleName, 9, "contract address not configured")
	ErrInvalidSwapType   = errorsmod.Register(ModuleName, 10, "invalid swap type")
	ErrNotFound          = errorsmod.Register(ModuleName, 11, "not found")
)
