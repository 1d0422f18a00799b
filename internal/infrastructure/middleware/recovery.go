package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into 500 responses. A panic caused by a client that
// already went away (broken pipe, connection reset) is logged and the
// request aborted without writing a body the peer will never read.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID := c.GetString(RequestIDKey)

				if isBrokenPipe(r) {
					logger.Warn("client disconnected mid-request",
						zap.Any("error", r),
						zap.String("path", c.Request.URL.Path),
						zap.String("request_id", requestID),
					)
					c.Abort()
					return
				}

				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.Stack("stack"),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", requestID),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "internal server error",
					"request_id": requestID,
				})
			}
		}()
		c.Next()
	}
}

func isBrokenPipe(r any) bool {
	err, ok := r.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var syscallErr *os.SyscallError
	if !errors.As(opErr.Err, &syscallErr) {
		return false
	}
	msg := strings.ToLower(syscallErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
