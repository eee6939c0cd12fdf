package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tunitech/internal/notification"
)

type notificationPayload struct {
	Type      string `json:"type"`
	MatchID   string `json:"match_id"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes match lifecycle events to the recipient's live websocket
// connections. It satisfies notification.Notifier.
type Notifier struct {
	hub    *Hub
	logger *log.Logger
}

func NewNotifier(hub *Hub, logger *log.Logger) *Notifier {
	return &Notifier{hub: hub, logger: logger}
}

func (n *Notifier) Notify(_ context.Context, ev notification.Event) {
	if n == nil || n.hub == nil {
		return
	}

	payload := notificationPayload{
		Type:      string(ev.Kind),
		MatchID:   ev.MatchID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(payload)
	if err != nil {
		if n.logger != nil {
			n.logger.Printf("WS notify marshal error | kind=%s error=%v", ev.Kind, err)
		}
		return
	}

	n.hub.Send(ev.RecipientUserID, b)
}
