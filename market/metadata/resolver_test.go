package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alt-research/cw-nft-market/market/configs"
	"github.com/alt-research/cw-nft-market/market/core/logging"
)

const testCid = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func TestCandidateUrls(t *testing.T) {
	gateways := []string{"https://gw1.example/ipfs", "https://gw2.example/ipfs/"}

	urls, err := CandidateUrls("ipfs://"+testCid+"/1.json", gateways)
	require.NoError(t, err)
	require.Equal(t, []string{
		"https://gw1.example/ipfs/" + testCid + "/1.json",
		"https://gw2.example/ipfs/" + testCid + "/1.json",
	}, urls)

	urls, err = CandidateUrls("ipfs://ipfs/"+testCid, gateways[:1])
	require.NoError(t, err)
	require.Equal(t, []string{"https://gw1.example/ipfs/" + testCid}, urls)

	urls, err = CandidateUrls(testCid+"/7", gateways[:1])
	require.NoError(t, err)
	require.Equal(t, []string{"https://gw1.example/ipfs/" + testCid + "/7"}, urls)

	urls, err = CandidateUrls("https://meta.example/7.json", gateways)
	require.NoError(t, err)
	require.Equal(t, []string{"https://meta.example/7.json"}, urls)

	_, err = CandidateUrls("", gateways)
	require.Error(t, err)

	_, err = CandidateUrls("ftp://meta.example/7.json", gateways)
	require.Error(t, err)

	_, err = CandidateUrls("ipfs://"+testCid, nil)
	require.Error(t, err)
}

func newTestResolver(gateways ...string) *Resolver {
	return newTestResolverWithRetries(1, gateways...)
}

func newTestResolverWithRetries(retries int, gateways ...string) *Resolver {
	return NewResolver(logging.NewNopLogger(), configs.MetadataConfig{
		IpfsGateways: gateways,
		Timeout:      time.Second,
		Retries:      &retries,
		CacheTTL:     time.Minute,
	})
}

func TestResolveFallbackAndCache(t *testing.T) {
	var badHits, goodHits atomic.Int32

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		badHits.Add(1)
		http.NotFound(w, r)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goodHits.Add(1)
		assert.Equal(t, "/ipfs/"+testCid+"/1.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Token 1","image":"ipfs://img","attributes":[{"trait_type":"hat","value":"cap"}]}`))
	}))
	defer good.Close()

	r := newTestResolver(bad.URL+"/ipfs/", good.URL+"/ipfs/")

	md, err := r.Resolve(context.Background(), "ipfs://"+testCid+"/1.json")
	require.NoError(t, err)
	require.Equal(t, "Token 1", *md.Name)
	require.Equal(t, "cap", md.Attributes[0].Value)

	_, err = r.Resolve(context.Background(), "ipfs://"+testCid+"/1.json")
	require.NoError(t, err)

	require.Equal(t, int32(1), badHits.Load())
	require.Equal(t, int32(1), goodHits.Load())
}

func TestResolveStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	r := newTestResolver()

	_, err := r.Fetch(context.Background(), srv.URL+"/1.json")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusForbidden, statusErr.Code)
}

func TestResolveStatusErrorAfterRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestResolver().Fetch(context.Background(), srv.URL+"/1.json")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	require.Equal(t, int32(2), hits.Load())
}

func TestResolveRetriesDisabled(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestResolverWithRetries(0).Fetch(context.Background(), srv.URL+"/1.json")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadGateway, statusErr.Code)
	require.Equal(t, int32(1), hits.Load())
}

func TestResolveNotJson(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, err := newTestResolver().Fetch(context.Background(), srv.URL)
	require.ErrorContains(t, err, "not json")
}
