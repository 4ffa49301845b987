package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/alt-research/cw-nft-market/market/configs"
	"github.com/alt-research/cw-nft-market/market/contracts/cw721"
	"github.com/alt-research/cw-nft-market/market/core/logging"
)

const maxMetadataSize = 4 << 20

// StatusError is returned for a non 200 response.
type StatusError struct {
	Url    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.Url, e.Status)
}

// Resolver fetches the off-chain metadata json of the cw721 tokens.
type Resolver struct {
	logger   logging.Logger
	client   *retryablehttp.Client
	gateways []string
	cache    *cache.Cache
}

func NewResolver(logger logging.Logger, cfg configs.MetadataConfig) *Resolver {
	cfg.WithDefaults()

	client := retryablehttp.NewClient()
	client.RetryMax = *cfg.Retries
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = logger
	// keep the last response once the retries are exhausted, so its status is reported
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Resolver{
		logger:   logger,
		client:   client,
		gateways: cfg.IpfsGateways,
		cache:    cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// Fetch returns the raw metadata json of uri, trying the ipfs gateways in
// order for the ipfs uris.
func (r *Resolver) Fetch(ctx context.Context, uri string) (json.RawMessage, error) {
	if cached, ok := r.cache.Get(uri); ok {
		return cached.(json.RawMessage), nil
	}

	urls, err := CandidateUrls(uri, r.gateways)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, u := range urls {
		data, err := r.get(ctx, u)
		if err != nil {
			r.logger.Debug("fetch metadata failed", "url", u, "err", err)
			lastErr = err
			continue
		}

		r.cache.SetDefault(uri, data)
		return data, nil
	}

	return nil, errors.Wrapf(lastErr, "failed to fetch metadata of %s", uri)
}

// Resolve fetches and decodes the metadata of uri.
func (r *Resolver) Resolve(ctx context.Context, uri string) (*cw721.Metadata, error) {
	data, err := r.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}

	var md cw721.Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, errors.Wrapf(err, "invalid metadata of %s", uri)
	}

	return &md, nil
}

func (r *Resolver) get(ctx context.Context, u string) (json.RawMessage, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, &StatusError{Url: u, Status: resp.Status, Code: resp.StatusCode}
		}
	}
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataSize))
	if err != nil {
		return nil, errors.Wrap(err, "read metadata body failed")
	}

	if !json.Valid(body) {
		return nil, errors.Errorf("metadata of %s is not json", u)
	}

	return json.RawMessage(body), nil
}
