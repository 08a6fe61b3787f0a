package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BlackjackOdds/internal/engine"
	"BlackjackOdds/internal/model"
)

type staticTables struct{ t *model.Table }

func (s staticTables) Latest() *model.Table { return s.t }

func newServer(t *testing.T, tbl *model.Table) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewHandler(HandlerDeps{Tables: staticTables{tbl}, Precision: 6})))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestOptionsEndpoint(t *testing.T) {
	srv := newServer(t, nil)

	resp, body := get(t, srv.URL+"/options?hand=16&upcard=10")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got optionsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	want := engine.ComputeOptions(16, 10)
	assert.Equal(t, 16, got.HandScore)
	assert.Equal(t, 10, got.DealerUpcard)
	assert.Equal(t, want.StandWin, got.StandWin)
	assert.Equal(t, want.OptLoss, got.OptLoss)
	assert.Equal(t, "hit", got.BestAction)
	assert.InDelta(t, 1.0, got.HitWin+got.HitLoss+got.HitPush, 1e-12)
}

func TestOptionsEndpoint_BadInput(t *testing.T) {
	srv := newServer(t, nil)
	for _, q := range []string{"hand=x&upcard=2", "hand=12", "hand=12&upcard=0", "hand=12&upcard=11", "hand=-4&upcard=3", "hand=32&upcard=5", "hand=9223372036854775807&upcard=5", "hand=99999999999999999999&upcard=5"} {
		resp, body := get(t, srv.URL+"/options?"+q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		assert.NotEmpty(t, strings.TrimSpace(body), q)
	}
}

func TestTableEndpoints_BeforeFirstSweep(t *testing.T) {
	srv := newServer(t, nil)
	for _, p := range []string{"/table.csv", "/chart"} {
		resp, _ := get(t, srv.URL+p)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, p)
	}
}

func TestTableEndpoints(t *testing.T) {
	tbl := &model.Table{MinHand: 21, MaxHand: 21}
	for up := 1; up <= 10; up++ {
		tbl.Rows = append(tbl.Rows, engine.ComputeOptions(21, up))
	}
	srv := newServer(t, tbl)

	resp, body := get(t, srv.URL+"/table.csv")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, 11, strings.Count(body, "\n"))

	resp, body = get(t, srv.URL+"/chart")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "  21 |"+strings.Repeat("  S", 10))

	resp, body = get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}
