// Package gamelog extracts play-server credentials from the game client's
// web request log. The log is an append-only dump of outgoing requests, so
// the most recent occurrence of each key is the one that is still valid.
package gamelog

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrMissingCredential is returned when a required value is absent from both
// the configuration overrides and the log.
var ErrMissingCredential = errors.New("missing credential")

// DefaultClientVersion is used when no mobile_client_version appears in the log.
const DefaultClientVersion = "633"

// Credentials is everything needed to call the play server.
type Credentials struct {
	PlayServer    string // base URL, trailing slash included as logged
	UserID        string
	Hash          string
	ClientVersion string
}

var (
	mcvJSONQuoted = regexp.MustCompile(`"mobile_client_version"\s*:\s*"(\d+)"`)
	mcvJSONBare   = regexp.MustCompile(`"mobile_client_version"\s*:\s*(\d+)`)
	mcvKV         = regexp.MustCompile(`\bmobile_client_version=([0-9]+)`)
)

// Parse reads the log file and extracts the credential set. Any field may be
// missing; Validate decides which absences are fatal.
func Parse(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game log: %w", err)
	}
	return ParseText(string(data)), nil
}

// ParseText extracts credentials from raw log text.
func ParseText(text string) *Credentials {
	c := &Credentials{}

	c.PlayServer = extractJSON(text, "play_server")
	if c.PlayServer == "" {
		c.PlayServer = extractKV(text, "play_server")
	}
	// JSON bodies escape forward slashes.
	c.PlayServer = strings.ReplaceAll(c.PlayServer, `\/`, "/")

	c.UserID = extractJSON(text, "internal_user_id")
	if c.UserID == "" {
		c.UserID = extractKV(text, "internal_user_id")
	}

	c.Hash = extractKV(text, "hash")
	c.ClientVersion = extractClientVersion(text)

	return c
}

// Validate checks that every field required for the API call is present.
func (c *Credentials) Validate() error {
	var missing []string
	if c.PlayServer == "" {
		missing = append(missing, "play_server")
	}
	if c.UserID == "" {
		missing = append(missing, "internal_user_id")
	}
	if c.Hash == "" {
		missing = append(missing, "hash")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not found in log or overrides", ErrMissingCredential, strings.Join(missing, ", "))
	}
	return nil
}

// extractKV scans lines from newest to oldest for a key=value pair.
func extractKV(text, key string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(key) + `=([^&\n]+)`)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if m := re.FindStringSubmatch(lines[i]); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractJSON scans lines from newest to oldest for a "key":"value" fragment.
func extractJSON(text, key string) string {
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*"([^"]+)"`)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if m := re.FindStringSubmatch(lines[i]); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractClientVersion collects every mobile_client_version occurrence across
// the whole log (quoted JSON, bare JSON, then key=value form) and keeps the
// last candidate, falling back to DefaultClientVersion.
func extractClientVersion(text string) string {
	var candidates []string
	for _, m := range mcvJSONQuoted.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	for _, m := range mcvJSONBare.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	for _, m := range mcvKV.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	if len(candidates) == 0 {
		return DefaultClientVersion
	}
	return candidates[len(candidates)-1]
}
