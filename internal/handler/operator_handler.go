package handler

import (
	"os"

	"yatta-helin-be/internal/pkg/logger"
	internalWS "yatta-helin-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// OperatorHandler upgrades sales operators onto the live event feed.
// Handoff and reservation events reach every connected operator.
type OperatorHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewOperatorHandler(hub *internalWS.Hub, log logger.ILogger) *OperatorHandler {
	return &OperatorHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs authenticates the handshake itself. Browsers cannot set headers
// on websocket upgrades, so the token travels as a query param first.
func (h *OperatorHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("OperatorHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	operatorIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	operatorID, err := uuid.Parse(operatorIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid operator ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("OperatorHandler", "Operator connected", map[string]interface{}{"operator_id": operatorID})
			internalWS.ServeWs(h.hub, conn, operatorID)
			h.logger.Info("OperatorHandler", "Operator disconnected", map[string]interface{}{"operator_id": operatorID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *OperatorHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/helin/v1/ws/operator", h.ServeWs)
}
