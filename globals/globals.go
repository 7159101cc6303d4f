package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(EnvOr("JWT_SECRET", "changeme"))

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()

func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
