package types

import (
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

// Never is the empty object of the `never` expiration variant.
type Never struct{}

// Expiration is the cw-utils Expiration, exactly one field must be set.
type Expiration struct {
	AtHeight *uint64 `json:"at_height,omitempty"`
	// AtTime is a timestamp in nanoseconds, encoded as a string
	AtTime *wasmvmtypes.Uint64 `json:"at_time,omitempty"`
	Never  *Never              `json:"never,omitempty"`
}

func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

func ExpiresAtTime(t time.Time) Expiration {
	nanos := wasmvmtypes.Uint64(t.UnixNano())
	return Expiration{AtTime: &nanos}
}

func ExpiresNever() Expiration {
	return Expiration{Never: &Never{}}
}

func (e Expiration) Validate() error {
	set := 0
	if e.AtHeight != nil {
		set++
	}
	if e.AtTime != nil {
		set++
	}
	if e.Never != nil {
		set++
	}

	if set != 1 {
		return errorsmod.Wrapf(ErrInvalidExpiration, "expected one variant, got %d", set)
	}

	return nil
}

func (e Expiration) String() string {
	switch {
	case e.AtHeight != nil:
		return fmt.Sprintf("expiration height: %d", *e.AtHeight)
	case e.AtTime != nil:
		return fmt.Sprintf("expiration time: %s", time.Unix(0, int64(*e.AtTime)).UTC().Format(time.RFC3339))
	case e.Never != nil:
		return "expiration: never"
	default:
		return "expiration: unset"
	}
}
