package network

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlit-games/financial-island/server/internal/platform/logger"
)

func newTestHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(newDispatchSession(t), logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	return hub, cancel
}

func TestHubBroadcastsSnapshotToClients(t *testing.T) {
	hub, cancel := newTestHub(t)
	defer cancel()

	client := &Client{hub: hub, send: make(chan []byte, 8)}
	hub.register <- client

	hub.BroadcastSnapshot()

	select {
	case raw := <-client.send:
		var frame Frame
		require.NoError(t, json.Unmarshal(raw, &frame))
		assert.Equal(t, "snapshot", frame.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("client never received the snapshot frame")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub, cancel := newTestHub(t)
	defer cancel()

	client := &Client{hub: hub, send: make(chan []byte, 8)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, open := <-client.send:
		assert.False(t, open, "send channel closes on unregister")
	case <-time.After(2 * time.Second):
		t.Fatal("send channel never closed")
	}
}

func TestHubDropsSlowClients(t *testing.T) {
	hub, cancel := newTestHub(t)
	defer cancel()

	// Unbuffered and never read: the first broadcast evicts it.
	slow := &Client{hub: hub, send: make(chan []byte)}
	hub.register <- slow

	hub.BroadcastSnapshot()

	select {
	case _, open := <-slow.send:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("slow client was never dropped")
	}
}
