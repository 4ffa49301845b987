package metadata

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var cidRegexp = regexp.MustCompile(`((?:Qm[1-9A-HJ-NP-Za-km-z]{44}|bafy[a-z2-7]{50,}).*$)`)

func IsUrl(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsIpfs reports whether uri is served by ipfs: an ipfs:// uri or a bare cid
// with an optional path.
func IsIpfs(uri string) bool {
	if strings.HasPrefix(uri, "ipfs://") {
		return true
	}

	return !IsUrl(uri) && cidRegexp.MatchString(uri)
}

// ipfsPath returns the `<cid>/<path>` part of an ipfs uri.
func ipfsPath(uri string) (string, bool) {
	if strings.HasPrefix(uri, "ipfs://") {
		p := strings.TrimPrefix(uri, "ipfs://")
		p = strings.TrimPrefix(p, "ipfs/")
		return p, p != ""
	}

	parts := cidRegexp.FindStringSubmatch(uri)
	if len(parts) == 2 {
		return parts[1], true
	}

	return "", false
}

// CandidateUrls returns the urls to fetch uri from, in order.
func CandidateUrls(uri string, gateways []string) ([]string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, errors.New("empty token uri")
	}

	if IsIpfs(uri) {
		p, ok := ipfsPath(uri)
		if !ok {
			return nil, errors.Errorf("invalid ipfs uri %s", uri)
		}
		if len(gateways) == 0 {
			return nil, errors.New("no ipfs gateway configured")
		}

		urls := make([]string, 0, len(gateways))
		for _, gw := range gateways {
			if !strings.HasSuffix(gw, "/") {
				gw += "/"
			}
			urls = append(urls, gw+p)
		}
		return urls, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid token uri %s", uri)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("unsupported token uri scheme %q", u.Scheme)
	}

	return []string{uri}, nil
}
