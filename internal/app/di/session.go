package di

import (
	"github.com/redis/go-redis/v9"

	userusecase "jobboard_backend/internal/feature/users/usecase"
	jwtauth "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/session"
)

// NewTokenRevocations creates the logout revocation store. Without Redis
// the server still runs: logout clears the cookie but issued tokens stay
// valid until they expire.
func NewTokenRevocations(rdb *redis.Client) (jwtauth.RevocationChecker, userusecase.TokenRevoker) {
	if rdb == nil {
		return nil, nil
	}
	store := session.NewRevocationRedis(rdb, "revoked")
	return store, store
}
