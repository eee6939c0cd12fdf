package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tunitech/internal/pkg/jwt"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, jwtService jwt.Service, logger *log.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtService, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleNotificationsWS upgrades the connection and binds it to the
// authenticated user. Browsers cannot set headers on websocket requests, so
// the token is also accepted via the token query parameter.
func (h *Handler) HandleNotificationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	userID, err := h.authenticate(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | user_id=%s error=%v", userID, err)
			}
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) authenticate(c fiber.Ctx) (uuid.UUID, error) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		auth := strings.TrimSpace(c.Get("Authorization"))
		if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
			token = strings.TrimSpace(after)
		}
	}
	if token == "" {
		return uuid.Nil, jwt.ErrTokenInvalid
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	if h.jwt.IsRefreshToken(claims) {
		return uuid.Nil, jwt.ErrTokenInvalid
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, jwt.ErrTokenInvalid
	}
	return claims.UserID, nil
}
