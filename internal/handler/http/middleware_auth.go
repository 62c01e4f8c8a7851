package http

import (
	"net/http"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
)

// auth resolves the caller of a protected request.
//
// The bearer token proves identity only. Role and status are re-read from
// storage through [service.AccessService.ResolveCaller], so a user blocked
// after the token was issued is rejected with 403 and a deleted user with
// 401. On success the caller is stored with [utils.WithCaller].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		caller, err := h.services.AccessService.ResolveCaller(ctx, token.UserID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		log.Debug().Str("user_id", caller.UserID).Str("role", string(caller.Role)).Msg("caller resolved")

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(ctx, caller)))
	})
}
