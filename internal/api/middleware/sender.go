package middleware

import (
	"context"
	"net/http"

	"github.com/pokearch/registry/internal/api/apierr"
	"github.com/pokearch/registry/internal/model"
)

type contextKey string

const senderContextKey contextKey = "sender"

// SenderHeader carries the principal on whose behalf a request is made.
// It stands in for the runtime-authenticated message signer; outside
// this service the surrounding runtime is expected to have verified it.
const SenderHeader = "X-Sender"

// Sender extracts and validates the sender principal if the header is
// present. A malformed principal fails the request; an absent header
// does not, since most registry operations take no caller identity.
func Sender() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(SenderHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			sender, err := model.ParsePrincipal(raw)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), senderContextKey, sender)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSender returns the validated sender principal from the request
// context, or "" if the request carried none.
func GetSender(ctx context.Context) model.Principal {
	sender, _ := ctx.Value(senderContextKey).(model.Principal)
	return sender
}
