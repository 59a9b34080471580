package middleware

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// actorIDKey is the key used to store the authenticated actor's ID in the request context.
const actorIDKey = contextKey("actorID")

// WithActorID returns a copy of ctx carrying the actor ID.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// GetActorIDFromContext retrieves the authenticated actor ID from the Gin request context.
// It returns the actor ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorID, ok := c.Request.Context().Value(actorIDKey).(string)
	if !ok || actorID == "" {
		return "", false
	}
	return actorID, true
}

// ActorOrSystem returns the authenticated actor, falling back to domain.SystemActor
// when the API runs without authentication.
func ActorOrSystem(c *gin.Context) string {
	if actorID, ok := GetActorIDFromContext(c); ok {
		return actorID
	}
	return domain.SystemActor
}
