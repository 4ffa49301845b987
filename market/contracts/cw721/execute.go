package cw721

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/types"
)

func (c *Collection) execute(ctx context.Context, name string, msg ExecuteMsg) (*cwclient.TxResponse, error) {
	res, err := c.client.Execute(ctx, msg, nil)
	if err != nil {
		return res, errors.Wrapf(err, "failed to %s", name)
	}
	return res, nil
}

func (c *Collection) validate(addr, tokenId string) error {
	if err := types.ValidateAddress(addr, c.prefix); err != nil {
		return err
	}
	if tokenId == "" {
		return errorsmod.Wrap(types.ErrEmptyId, "token id")
	}
	return nil
}

func validateExpires(expires *types.Expiration) error {
	if expires == nil {
		return nil
	}
	return expires.Validate()
}

func (c *Collection) TransferNft(ctx context.Context, recipient, tokenId string) (*cwclient.TxResponse, error) {
	if err := c.validate(recipient, tokenId); err != nil {
		return nil, err
	}

	return c.execute(ctx, "transfer nft", NewTransferNftMsg(recipient, tokenId))
}

// SendNft transfers the token to contract and calls its receive_nft with msg.
func (c *Collection) SendNft(ctx context.Context, contract, tokenId string, msg []byte) (*cwclient.TxResponse, error) {
	if err := c.validate(contract, tokenId); err != nil {
		return nil, err
	}

	return c.execute(ctx, "send nft", NewSendNftMsg(contract, tokenId, msg))
}

func (c *Collection) Approve(
	ctx context.Context,
	spender, tokenId string,
	expires *types.Expiration,
) (*cwclient.TxResponse, error) {
	if err := c.validate(spender, tokenId); err != nil {
		return nil, err
	}
	if err := validateExpires(expires); err != nil {
		return nil, err
	}

	return c.execute(ctx, "approve", NewApproveMsg(spender, tokenId, expires))
}

func (c *Collection) Revoke(ctx context.Context, spender, tokenId string) (*cwclient.TxResponse, error) {
	if err := c.validate(spender, tokenId); err != nil {
		return nil, err
	}

	return c.execute(ctx, "revoke", NewRevokeMsg(spender, tokenId))
}

func (c *Collection) ApproveAll(ctx context.Context, operator string, expires *types.Expiration) (*cwclient.TxResponse, error) {
	if err := types.ValidateAddress(operator, c.prefix); err != nil {
		return nil, err
	}
	if err := validateExpires(expires); err != nil {
		return nil, err
	}

	return c.execute(ctx, "approve all", NewApproveAllMsg(operator, expires))
}

func (c *Collection) RevokeAll(ctx context.Context, operator string) (*cwclient.TxResponse, error) {
	if err := types.ValidateAddress(operator, c.prefix); err != nil {
		return nil, err
	}

	return c.execute(ctx, "revoke all", NewRevokeAllMsg(operator))
}

func (c *Collection) Burn(ctx context.Context, tokenId string) (*cwclient.TxResponse, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}

	return c.execute(ctx, "burn", NewBurnMsg(tokenId))
}
