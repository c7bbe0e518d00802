package httpapi

import (
	"context"

	"github.com/riskibarqy/league-dashboard/internal/domain/user"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}

// auditAdminWrite records which admin changed which resource. Reads are not
// audited.
func auditAdminWrite(ctx context.Context, logger *logging.Logger, action, resourceID string) {
	actor := "unknown"
	if p, ok := principalFromContext(ctx); ok && p.UserID != "" {
		actor = p.UserID
	}
	logger.InfoContext(ctx, "admin write", "action", action, "resource_id", resourceID, "admin_id", actor)
}
