package tracker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Extraversi0n/road-to-brivJ/internal/config"
	"github.com/Extraversi0n/road-to-brivJ/internal/gamelog"
	"github.com/Extraversi0n/road-to-brivJ/internal/recorder"
)

const serverPayload = `{
	"details": {
		"chests": {"1": 250, "2": 100},
		"red_rubies": 10000,
		"buffs": [{"buff_id": 33, "inventory_amount": 2}]
	}
}`

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Goal:       1000,
		OutputPath: filepath.Join(t.TempDir(), "overlay.png"),
	}
	cfg.Overrides.UserID = "424242"
	cfg.Overrides.Hash = "deadbeef"
	cfg.Overrides.ClientVersion = "635"
	cfg.Overrides.APIBaseURL = baseURL + "/"
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(serverPayload))
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	tr := New(cfg, recorder.NewNoopRecorder())

	snap, err := tr.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), snap.Base)
	assert.Equal(t, int64(157), snap.Total)
	assert.Equal(t, int64(843), snap.Remaining)
	assert.Equal(t, int64(943), snap.Blocks[0].RawGoal)

	// The overlay file was written.
	info, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_UpstreamFailureWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	tr := New(cfg, recorder.NewNoopRecorder())

	_, err := tr.Run(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr), "no partial output on failure")
}

func TestResolveCredentials_FullOverridesSkipLog(t *testing.T) {
	cfg := testConfig(t, "https://ps7.example.com")
	cfg.LogPath = "/nonexistent/webRequestLog.txt" // must never be read
	tr := New(cfg, recorder.NewNoopRecorder())

	creds, err := tr.ResolveCredentials()
	require.NoError(t, err)
	assert.Equal(t, "424242", creds.UserID)
	assert.Equal(t, "https://ps7.example.com/", creds.PlayServer)
}

func TestResolveCredentials_LogMergedWithPartialOverrides(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "webRequestLog.txt")
	require.NoError(t, os.WriteFile(logPath, []byte(
		`{"play_server":"https:\/\/ps7.example.com\/","internal_user_id":"111"}`+"\n"+
			"call=getuserdetails&hash=cafe\n"), 0644))

	cfg := &config.Config{Goal: 1000, OutputPath: "out.png", LogPath: logPath}
	cfg.Overrides.UserID = "999" // partial override wins over the log value
	tr := New(cfg, recorder.NewNoopRecorder())

	creds, err := tr.ResolveCredentials()
	require.NoError(t, err)
	assert.Equal(t, "999", creds.UserID)
	assert.Equal(t, "cafe", creds.Hash)
	assert.Equal(t, "https://ps7.example.com/", creds.PlayServer)
}

func TestResolveCredentials_MissingCredential(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "webRequestLog.txt")
	require.NoError(t, os.WriteFile(logPath, []byte("nothing useful here\n"), 0644))

	cfg := &config.Config{Goal: 1000, OutputPath: "out.png", LogPath: logPath}
	tr := New(cfg, recorder.NewNoopRecorder())

	_, err := tr.ResolveCredentials()
	require.ErrorIs(t, err, gamelog.ErrMissingCredential)
}
