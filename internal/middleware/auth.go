package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/petshop/checkout-service/internal/entities"
)

// Identity headers are asserted by the authenticating gateway in front of
// this service; here they are only decoded into an explicit actor.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

type actorKey struct{}

// Identity puts the actor from the gateway headers into the request
// context. Requests without a valid identity pass through; handlers
// decide whether the operation requires one.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		role := entities.Role(r.Header.Get(HeaderUserRole))
		if err != nil || id <= 0 || !role.Valid() {
			next.ServeHTTP(w, r)
			return
		}

		actor := entities.User{
			ID:    id,
			Email: r.Header.Get(HeaderUserEmail),
			Role:  role,
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func WithActor(ctx context.Context, actor entities.User) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func Actor(ctx context.Context) (entities.User, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.User)
	return actor, ok
}
