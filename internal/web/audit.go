package web

import (
	"context"

	"github.com/danmuck/kvadmin/internal/console"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// RequestID stamps each request with a correlation id, echoed in the
// X-Request-ID response header and carried in the request context for
// the audit hooks.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// AuditBefore logs one line per command before it executes.
func AuditBefore(logger zerolog.Logger) console.BeforeFunc {
	return func(ctx context.Context, name string, args []string) {
		logger.Info().
			Str("request_id", requestIDFrom(ctx)).
			Str("command", name).
			Int("args", len(args)).
			Msg("console_command")
	}
}

// AuditAfter logs the outcome of a successful execution. It only
// observes the result; it never mutates it.
func AuditAfter(logger zerolog.Logger) console.AfterFunc {
	return func(ctx context.Context, name string, args []string, result console.Result) {
		logger.Info().
			Str("request_id", requestIDFrom(ctx)).
			Str("command", name).
			Str("type", result.TypeName()).
			Msg("console_command_done")
	}
}
