package services_test

import (
	"testing"
	"time"

	"github.com/imagevault/image-service/internal/jwt"
)

func newTestJWT(t *testing.T, exp time.Duration) *jwt.JWT {
	t.Helper()
	return jwt.New(
		jwt.WithSecretKey("test-secret"),
		jwt.WithExpiration(exp),
	)
}
