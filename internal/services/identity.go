package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/imagevault/image-service/internal/jwt"
	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/models"
)

// ErrUnknownUser is returned when a verified token references a user that no
// longer exists. Tokens are not proactively invalidated on user deletion;
// this is the detection point.
var ErrUnknownUser = errors.New("user not found for token")

// TokenParser defines the token operations the resolver needs.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// IdentityUserReader looks up users by id.
type IdentityUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserCache caches resolved user records.
type UserCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// IdentityService resolves an inbound request's bearer token to a live user
// record. It has no side effects beyond cache population and runs before
// every asset operation. A user deleted after being cached stays resolvable
// until the cache entry expires, so deletion detection lags by at most the
// cache TTL.
type IdentityService struct {
	tokens TokenParser
	users  IdentityUserReader
	cache  UserCache
}

// NewIdentityService creates an IdentityService. cache may be nil, in which
// case every resolution goes to the user store.
func NewIdentityService(tokens TokenParser, users IdentityUserReader, cache UserCache) *IdentityService {
	return &IdentityService{
		tokens: tokens,
		users:  users,
		cache:  cache,
	}
}

// Resolve verifies the request's bearer token and returns the user it binds.
// Token errors (jwt.ErrMissingToken, jwt.ErrInvalidToken, jwt.ErrExpiredToken)
// propagate as-is; a verified token whose user is gone fails with
// ErrUnknownUser.
func (svc *IdentityService) Resolve(ctx context.Context, r *http.Request) (*models.UserDB, error) {
	tokenString, err := svc.tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	claims, err := svc.tokens.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		user, err := svc.cache.Get(ctx, claims.UserID)
		if err != nil {
			// Cache failures degrade to a store read.
			logger.Log.Warnw("user cache read failed", "user_id", claims.UserID, "err", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := svc.users.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to look up user for token", "user_id", claims.UserID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("token references unknown user", "user_id", claims.UserID)
		return nil, ErrUnknownUser
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("user cache write failed", "user_id", user.UserID, "err", err)
		}
	}

	return user, nil
}
