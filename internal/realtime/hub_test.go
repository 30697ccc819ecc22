package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"assuredgig/internal/realtime"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	hub    *realtime.Hub
	server *httptest.Server
	echoed chan string
}

// newTestServer serves /ws?user=<id>&channel=<name> against a local hub.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := realtime.NewHub(nil, nil)
	go hub.Run(ctx)

	ts := &testServer{hub: hub, echoed: make(chan string, 4)}
	upgrader := realtime.NewUpgrader(nil)
	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := uuid.MustParse(r.URL.Query().Get("user"))
		_ = hub.Serve(upgrader, w, r, userID, r.URL.Query().Get("channel"), func(_ *realtime.Client, data []byte) {
			ts.echoed <- string(data)
		})
	}))
	t.Cleanup(func() {
		ts.server.Close()
		cancel()
	})
	return ts
}

func (ts *testServer) dial(t *testing.T, userID uuid.UUID, channel string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.server.URL, "http") + "/ws?user=" + userID.String() + "&channel=" + channel
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_DeliversToMatchingChannelOnly(t *testing.T) {
	ts := newTestServer(t)
	userID := uuid.New()
	contractID := uuid.New()

	notifConn := ts.dial(t, userID, realtime.ChannelNotifications)
	chatConn := ts.dial(t, userID, realtime.ContractChannel(contractID))

	require.Eventually(t, func() bool { return ts.hub.ConnectedClients() == 2 }, time.Second, 10*time.Millisecond)

	ts.hub.SendToUser(context.Background(), userID, realtime.ChannelNotifications, "notification", map[string]string{"title": "hi"})

	_ = notifConn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := notifConn.ReadMessage()
	require.NoError(t, err)

	var env struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "notification", env.Type)
	assert.Equal(t, "hi", env.Data["title"])

	// The chat socket is on another channel and must not receive it.
	_ = chatConn.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	_, _, err = chatConn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_SendToContractReachesBothParticipants(t *testing.T) {
	ts := newTestServer(t)
	clientID, freelancerID, contractID := uuid.New(), uuid.New(), uuid.New()
	channel := realtime.ContractChannel(contractID)

	clientConn := ts.dial(t, clientID, channel)
	freelancerConn := ts.dial(t, freelancerID, channel)
	require.Eventually(t, func() bool { return ts.hub.ConnectedClients() == 2 }, time.Second, 10*time.Millisecond)

	ts.hub.SendToContract(context.Background(), contractID, clientID, freelancerID, "message", "hello")

	for _, conn := range []*websocket.Conn{clientConn, freelancerConn} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"message","data":"hello"}`, string(data))
	}
}

func TestHub_InboundFramesReachHandler(t *testing.T) {
	ts := newTestServer(t)
	conn := ts.dial(t, uuid.New(), realtime.ChannelNotifications)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))

	select {
	case got := <-ts.echoed:
		assert.Equal(t, `{"type":"ping"}`, got)
	case <-time.After(time.Second):
		t.Fatal("inbound frame was not handed to the handler")
	}
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	ts := newTestServer(t)
	conn := ts.dial(t, uuid.New(), realtime.ChannelNotifications)
	require.Eventually(t, func() bool { return ts.hub.ConnectedClients() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return ts.hub.ConnectedClients() == 0 }, 2*time.Second, 10*time.Millisecond)
}
