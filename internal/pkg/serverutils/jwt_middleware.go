package serverutils

import (
	"context"
	"errors"

	"counselling-portal-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalUserId    = "user_id"
	LocalPrincipal = "principal"
)

// JwtMiddleware verifies the bearer token and stores its user_id claim in Locals.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}

		userId, ok := claims["user_id"].(string)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Token missing user_id"))
		}

		ctx.Locals(LocalUserId, userId)
		return ctx.Next()
	}
}

type PrincipalResolver interface {
	Resolve(ctx context.Context, userId uuid.UUID) (entity.Principal, error)
}

// PrincipalMiddleware loads the caller's role for the user_id set by JwtMiddleware.
// unauthenticated is the error the resolver returns for unknown or inactive users.
func PrincipalMiddleware(resolver PrincipalResolver, unauthenticated error) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		raw, _ := ctx.Locals(LocalUserId).(string)
		userId, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid user ID format in token"))
		}

		principal, err := resolver.Resolve(ctx.UserContext(), userId)
		if errors.Is(err, unauthenticated) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Unknown or inactive user"))
		}
		if err != nil {
			return err
		}

		ctx.Locals(LocalPrincipal, principal)
		return ctx.Next()
	}
}

// GetPrincipal returns the principal stored by PrincipalMiddleware.
func GetPrincipal(ctx *fiber.Ctx) (entity.Principal, bool) {
	p, ok := ctx.Locals(LocalPrincipal).(entity.Principal)
	return p, ok
}
