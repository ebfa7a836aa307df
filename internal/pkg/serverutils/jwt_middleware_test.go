package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestJwtMiddlewareAcceptsHmacToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "op-1"})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := testApp().Test(req)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestJwtMiddlewareRejectsNonHmacSigningMethod(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// A token that skips HMAC entirely must never reach signature
	// verification against the shared secret.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "op-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := testApp().Test(req)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin", nil)
	resp, err := testApp().Test(req)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
