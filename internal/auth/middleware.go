package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const bearerPrefix = "Bearer "

// Middleware enforces bearer-token authentication on every operation except
// those registered with Metadata["public"] = true. On success the user's ID is
// placed into the request context.
func Middleware(api huma.API, issuer *TokenIssuer) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if op := ctx.Operation(); op != nil {
			if public, _ := op.Metadata["public"].(bool); public {
				next(ctx)
				return
			}
		}

		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "authentication required")
			return
		}

		userID, err := issuer.ParseAccess(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			// Expired, forged, and mistyped tokens all get the same answer.
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(huma.WithValue(ctx, UserIDKey, userID))
	}
}
