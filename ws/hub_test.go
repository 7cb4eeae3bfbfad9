package ws_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smoke-server/entities"
	"smoke-server/ws"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// dial spins up a server that registers every connection with the hub and
// returns a connected client.
func dial(t *testing.T, hub *ws.Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestBroadcastReachesClient(t *testing.T) {
	hub := ws.NewHub()
	conn := dial(t, hub)

	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	hub.BroadcastReading(&entities.SmokeLog{ID: 1, Smoke: 450, Status: "DANGER"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var reading entities.SmokeLog
	require.NoError(t, json.Unmarshal(payload, &reading))
	assert.Equal(t, uint(1), reading.ID)
	assert.Equal(t, "DANGER", reading.Status)
}

// A dashboard that stops reading must not wedge the hub: once its kernel
// buffers fill, writes to it block, but the hub lock is released before any
// write so other readings and hub queries proceed.
func TestBroadcastWithStalledClientDoesNotBlockHub(t *testing.T) {
	hub := ws.NewHub()
	_ = dial(t, hub) // connected but never reads

	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	big := strings.Repeat("x", 1<<20)
	go func() {
		for i := 0; i < 64; i++ {
			hub.BroadcastReading(&entities.SmokeLog{ID: uint(i + 1), Smoke: 450, Status: big})
		}
	}()

	// Let the writer run into the stalled client's full buffers.
	time.Sleep(200 * time.Millisecond)

	done := make(chan int, 1)
	go func() { done <- hub.Count() }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub state blocked behind a stalled client's broadcast")
	}
}

func TestBroadcastDropsFailedClient(t *testing.T) {
	hub := ws.NewHub()
	conn := dial(t, hub)

	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	// The write after the close errors out and the client is removed.
	require.Eventually(t, func() bool {
		hub.BroadcastReading(&entities.SmokeLog{ID: 1, Smoke: 100, Status: entities.StatusNormal})
		return hub.Count() == 0
	}, 2*time.Second, 50*time.Millisecond)
}

func TestUnregisterRemovesClient(t *testing.T) {
	hub := ws.NewHub()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		id := hub.Register(conn)
		hub.Unregister(id)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 0 },
		time.Second, 10*time.Millisecond)
}
