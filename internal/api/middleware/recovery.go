package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/jet-merchant/internal/metrics"
)

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace, and returns a 500 Internal Server Error to the client.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				req := c.Request()

				log.ErrorContext(req.Context(), "panic recovered",
					"error", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"request_id", c.Get(requestIDKey),
					"stack", string(buf[:n]),
				)
				metrics.HTTPPanicsTotal.WithLabelValues(req.Method, routePath(c)).Inc()

				err = c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}()
			return next(c)
		}
	}
}
