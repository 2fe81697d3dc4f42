// Package middleware holds the request middleware shared across domains.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
)

// AccessLevelAdmin is the access level allowed to mutate data.
const AccessLevelAdmin = "superAdmin"

// TokenClaims are the JWT claims issued at login.
type TokenClaims struct {
	EmployeeID  string `json:"employeeId"`
	LoginName   string `json:"loginName"`
	AccessLevel string `json:"accessLevel"`
	jwt.RegisteredClaims
}

func unauthorized(c fiber.Ctx, err error) error {
	var customErr *common.Error
	statusCode := common.StatusUnauthorized
	message := common.MsgUnauthorized
	code := common.ErrCodeAuthToken.Code
	if errors.As(err, &customErr) {
		statusCode = customErr.StatusCode
		message = customErr.Message
		code = customErr.Code.Code
	}
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(fiber.Map{
		"code":    code,
		"message": message,
		"status":  "error",
	})
}

// ParseToken validates a bearer token string and returns its claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// AuthMiddleware validates the Authorization bearer token and stores the
// claims in request locals. With requireAdmin, the token must carry the
// admin access level.
func AuthMiddleware(requireAdmin bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, common.ErrTokenMissing)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c, common.ErrTokenInvalid)
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			return unauthorized(c, err)
		}

		if requireAdmin && claims.AccessLevel != AccessLevelAdmin {
			return unauthorized(c, common.NewError(
				common.ErrCodeAuth,
				common.MsgForbidden,
				common.StatusForbidden,
				nil,
			))
		}

		c.Locals("employee_id", claims.EmployeeID)
		c.Locals("login_name", claims.LoginName)
		c.Locals("access_level", claims.AccessLevel)

		return c.Next()
	}
}
