package collector

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Extraversi0n/road-to-brivJ/internal/gamelog"
)

// ErrUpstream marks a failed or malformed play-server response. There is no
// retry: a bad response aborts the whole run.
var ErrUpstream = errors.New("play server error")

// PlayServerFetcher implements Fetcher against the game's post.php endpoint.
type PlayServerFetcher struct {
	Creds  gamelog.Credentials
	Client *http.Client
}

// NewPlayServerFetcher creates a fetcher with optional proxy support.
func NewPlayServerFetcher(creds gamelog.Credentials, proxyURL string) *PlayServerFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PlayServerFetcher{
		Creds: creds,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *PlayServerFetcher) Name() string { return "playserver" }

// FetchUserDetails performs the single getuserdetails call. The parameter
// set is fixed; only the credentials vary per player.
func (f *PlayServerFetcher) FetchUserDetails() ([]byte, error) {
	endpoint := f.Creds.PlayServer + "post.php"

	params := url.Values{}
	params.Set("call", "getuserdetails")
	params.Set("user_id", f.Creds.UserID)
	params.Set("hash", f.Creds.Hash)
	params.Set("instance_key", "0")
	params.Set("include_free_play_objectives", "true")
	params.Set("timestamp", "0")
	params.Set("request_id", "0")
	params.Set("language_id", "1")
	params.Set("network_id", "21")
	params.Set("mobile_client_version", f.Creds.ClientVersion)
	params.Set("localization_aware", "true")

	req, err := http.NewRequest(http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrUpstream, resp.StatusCode, snippet(body))
	}
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "{") {
		return nil, fmt.Errorf("%w: non-JSON response: %s", ErrUpstream, snippet(body))
	}
	return body, nil
}

// snippet returns a short diagnostic prefix of a response body.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
