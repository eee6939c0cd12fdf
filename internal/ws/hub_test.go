package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("ClientCount = %d, want %d", h.ClientCount(), want)
}

func TestHubDeliversOnlyToRecipient(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	alice := uuid.New()
	bob := uuid.New()

	aliceClient := NewClient(h, nil, alice)
	bobClient := NewClient(h, nil, bob)
	h.Register(aliceClient)
	h.Register(bobClient)
	waitForClients(t, h, 2)

	h.Send(alice, []byte(`{"type":"match_created"}`))

	select {
	case msg := <-aliceClient.send:
		if string(msg) != `{"type":"match_created"}` {
			t.Errorf("payload = %s", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("recipient never received the message")
	}

	select {
	case msg := <-bobClient.send:
		t.Errorf("unrelated user received %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubFansOutToAllConnectionsOfUser(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	userID := uuid.New()
	first := NewClient(h, nil, userID)
	second := NewClient(h, nil, userID)
	h.Register(first)
	h.Register(second)
	waitForClients(t, h, 2)

	h.Send(userID, []byte("hello"))

	for i, c := range []*Client{first, second} {
		select {
		case <-c.send:
		case <-time.After(2 * time.Second):
			t.Fatalf("connection %d never received the message", i)
		}
	}
}

func TestHubUnregisterDropsConnection(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	userID := uuid.New()
	c := NewClient(h, nil, userID)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Unregister(c)
	waitForClients(t, h, 0)

	if _, open := <-c.send; open {
		t.Error("send channel left open after unregister")
	}
}
