package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/infrastructure/storage"
	"dungeon-arena/internal/input"
	"dungeon-arena/internal/network"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Quiet()
	os.Exit(m.Run())
}

type idleSource struct{}

func (idleSource) Next(*api.Snapshot) input.Buttons { return 0 }

type fixture struct {
	runner *engine.Runner
	hub    *network.Broadcaster
	board  *storage.Leaderboard
	http   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := engine.NewConfig()
	cfg.Seed = 7
	cfg.PlayerName = "spectated"
	cfg.Grid = engine.GridConfig{Width: 30, Height: 30, WalkSteps: 300}

	g, err := engine.New(cfg)
	require.NoError(t, err)

	hub := network.NewBroadcaster()
	runner := engine.NewRunner(g, idleSource{}, hub)
	board := storage.NewLeaderboard(filepath.Join(t.TempDir(), "scores.txt"))

	srv := httptest.NewServer(New(runner, hub, board, "0").Handler())
	t.Cleanup(srv.Close)

	return &fixture{runner: runner, hub: hub, board: board, http: srv}
}

func (f *fixture) dial(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func readJSONFrame(t *testing.T, conn *websocket.Conn) *api.Snapshot {
	t.Helper()
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, kind)

	var s api.Snapshot
	require.NoError(t, json.Unmarshal(data, &s))
	return &s
}

func TestWS_InitCarriesGrid(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "")

	init := readJSONFrame(t, conn)
	assert.Equal(t, frameInit, init.Type)
	require.NotNil(t, init.Grid)
	assert.Equal(t, 30, init.Grid.Width)
	assert.Equal(t, init.GridVersion, init.Grid.Version)

	require.NoError(t, f.runner.Step(2))
	next := readJSONFrame(t, conn)
	assert.Equal(t, frameSnapshot, next.Type)
	assert.Equal(t, uint64(2), next.Tick)
	assert.Nil(t, next.Grid, "сетка уже у зрителя")
}

func TestWS_Resync(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "")
	readJSONFrame(t, conn)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: api.ActionResync}))

	// RESYNC обрабатывается асинхронно, ждём кадр с сеткой
	var got *api.Snapshot
	for i := 0; i < 50 && got == nil; i++ {
		require.NoError(t, f.runner.Step(1))
		if s := readJSONFrame(t, conn); s.Grid != nil {
			got = s
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, got.GridVersion, got.Grid.Version)
}

func TestWS_Every(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "?every=3")
	readJSONFrame(t, conn)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.runner.Step(1))
	}
	s := readJSONFrame(t, conn)
	assert.Equal(t, uint64(3), s.Tick)
}

func TestWS_Msgpack(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "?format=msgpack")

	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, kind)

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	var s api.Snapshot
	require.NoError(t, dec.Decode(&s))

	assert.Equal(t, frameInit, s.Type)
	require.NotNil(t, s.Grid)
	assert.Equal(t, f.runner.Latest().Player.X, s.Player.X)
	assert.Equal(t, f.runner.Latest().RunID, s.RunID)
}

func TestWS_BadOptions(t *testing.T) {
	f := newFixture(t)

	for _, q := range []string{"?format=xml", "?every=0", "?every=abc"} {
		resp, err := http.Get(f.http.URL + "/ws" + q)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestHealthAndVersion(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.http.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	vresp, err := http.Get(f.http.URL + "/version")
	require.NoError(t, err)
	defer vresp.Body.Close()
	assert.Equal(t, http.StatusOK, vresp.StatusCode)
	assert.Equal(t, "application/json", vresp.Header.Get("Content-Type"))
}

func TestDebugProgression(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.runner.Step(1))

	resp, err := http.Get(f.http.URL + "/debug/progression")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dump struct {
		Tick     uint64           `json:"tick"`
		Progress api.ProgressView `json:"progress"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dump))
	assert.Equal(t, uint64(1), dump.Tick)
	assert.Equal(t, 1, dump.Progress.Stage)
}

func TestDebugGrid(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.http.URL + "/debug/grid")
	require.NoError(t, err)
	defer resp.Body.Close()

	var g api.GridView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&g))
	assert.Len(t, g.Rows, 30)
}

func TestLeaderboardEndpoint(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.http.URL + "/leaderboard")
	require.NoError(t, err)
	var empty []storage.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	resp.Body.Close()
	assert.Empty(t, empty)

	require.NoError(t, f.board.Record("alice", 120))

	resp, err = http.Get(f.http.URL + "/leaderboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	var entries []storage.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	assert.Equal(t, []storage.Entry{{Name: "alice", Score: 120}}, entries)
}

func TestEncodeFrame(t *testing.T) {
	s := &api.Snapshot{Type: frameSnapshot, Tick: 9}

	kind, data, err := encodeFrame(api.FormatJSON, s)
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, kind)
	assert.Contains(t, string(data), `"tick":9`)

	kind, _, err = encodeFrame(api.FormatMsgpack, s)
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, kind)
}

func TestPprof_OffByDefault(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.http.URL + "/debug/pprof/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	srv := New(f.runner, f.hub, f.board, "0")
	srv.Profiling = true
	prof := httptest.NewServer(srv.Handler())
	defer prof.Close()

	resp, err = http.Get(prof.URL + "/debug/pprof/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
