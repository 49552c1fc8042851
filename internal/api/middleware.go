package api

import (
	"context"
	"net/http"
	"strings"

	"sklep-api/internal/auth"
	"sklep-api/internal/models"

	"github.com/google/uuid"
)

type contextKey string

const accountContextKey = contextKey("account")

// AuthMiddleware guards every mutating route. Order matters: signature check
// before claims, claims before the account lookup. The lookup makes deleting
// an account an instant revocation even while its tokens are still unexpired.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "You are not logged in, please provide token")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "You are not logged in, please provide token")
			return
		}

		tokenString := headerParts[1]

		// Expired, forged and malformed tokens all get the same answer.
		claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		accountID, err := uuid.Parse(claims.Subject)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		account, err := s.store.GetAccountByID(r.Context(), accountID)
		if err != nil {
			respondDBError(w, err)
			return
		}
		if account == nil {
			respondError(w, http.StatusUnauthorized, "The user belonging to this token no longer exists")
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, account)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AccountFromContext(ctx context.Context) *models.Account {
	if account, ok := ctx.Value(accountContextKey).(*models.Account); ok {
		return account
	}
	return nil
}
