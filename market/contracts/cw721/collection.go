package cw721

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/client/cwclient"
	"github.com/alt-research/cw-nft-market/market/types"
)

// Collection is the client of a cw721 NFT collection contract.
type Collection struct {
	client cwclient.ICosmosWasmContractClient
	prefix string
}

func New(client cwclient.ICosmosWasmContractClient, prefix string) *Collection {
	return &Collection{
		client: client,
		prefix: prefix,
	}
}

func (c *Collection) Address() string {
	return c.client.ContractAddress()
}

func (c *Collection) query(ctx context.Context, name string, msg QueryMsg, resp any) error {
	if err := c.client.QuerySmartContractState(ctx, msg, resp); err != nil {
		return errors.Wrapf(err, "failed to query %s", name)
	}
	return nil
}

func (c *Collection) OwnerOf(ctx context.Context, tokenId string, withExpired bool) (*OwnerOfResponse, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}

	var resp OwnerOfResponse
	if err := c.query(ctx, "owner_of", QueryMsg{
		OwnerOf: &queryOwnerOf{TokenId: tokenId, IncludeExpired: includeExpired(withExpired)},
	}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) Approval(ctx context.Context, tokenId, spender string, withExpired bool) (*ApprovalResponse, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}

	var resp ApprovalResponse
	if err := c.query(ctx, "approval", QueryMsg{
		Approval: &queryApproval{
			TokenId:        tokenId,
			Spender:        spender,
			IncludeExpired: includeExpired(withExpired),
		},
	}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) Approvals(ctx context.Context, tokenId string, withExpired bool) (*ApprovalsResponse, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}

	var resp ApprovalsResponse
	if err := c.query(ctx, "approvals", QueryMsg{
		Approvals: &queryApprovals{TokenId: tokenId, IncludeExpired: includeExpired(withExpired)},
	}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) AllOperators(
	ctx context.Context,
	owner string,
	withExpired bool,
	page types.RangeParams,
) (*OperatorsResponse, error) {
	var resp OperatorsResponse
	if err := c.query(ctx, "all_operators", QueryMsg{
		AllOperators: &queryAllOperators{
			Owner:          owner,
			IncludeExpired: includeExpired(withExpired),
			RangeParams:    page,
		},
	}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) NumTokens(ctx context.Context) (uint64, error) {
	var resp NumTokensResponse
	if err := c.query(ctx, "num_tokens", QueryMsg{NumTokens: &queryEmpty{}}, &resp); err != nil {
		return 0, err
	}

	return resp.Count, nil
}

func (c *Collection) ContractInfo(ctx context.Context) (*ContractInfoResponse, error) {
	var resp ContractInfoResponse
	if err := c.query(ctx, "contract_info", QueryMsg{ContractInfo: &queryEmpty{}}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) NftInfo(ctx context.Context, tokenId string) (*NftInfoResponse, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}

	var resp NftInfoResponse
	if err := c.query(ctx, "nft_info", QueryMsg{NftInfo: &queryNftInfo{TokenId: tokenId}}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) AllNftInfo(ctx context.Context, tokenId string, withExpired bool) (*AllNftInfoResponse, error) {
	if tokenId == "" {
		return nil, errorsmod.Wrap(types.ErrEmptyId, "token id")
	}

	var resp AllNftInfoResponse
	if err := c.query(ctx, "all_nft_info", QueryMsg{
		AllNftInfo: &queryOwnerOf{TokenId: tokenId, IncludeExpired: includeExpired(withExpired)},
	}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) Tokens(ctx context.Context, owner string, page types.RangeParams) (*TokensResponse, error) {
	if err := types.ValidateAddress(owner, c.prefix); err != nil {
		return nil, err
	}

	var resp TokensResponse
	if err := c.query(ctx, "tokens", QueryMsg{
		Tokens: &queryTokens{Owner: owner, RangeParams: page},
	}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) AllTokens(ctx context.Context, page types.RangeParams) (*TokensResponse, error) {
	var resp TokensResponse
	if err := c.query(ctx, "all_tokens", QueryMsg{AllTokens: &page}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Collection) Minter(ctx context.Context) (string, error) {
	var resp MinterResponse
	if err := c.query(ctx, "minter", QueryMsg{Minter: &queryEmpty{}}, &resp); err != nil {
		return "", err
	}

	if resp.Minter == nil {
		return "", nil
	}
	return *resp.Minter, nil
}
