package middleware

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BodyLimit rejects request bodies larger than limit bytes with a 413. The
// console forms post small flat records; anything bigger is a client bug.
func BodyLimit(limit int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody {
				return next(c)
			}
			if req.ContentLength > limit {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
			}
			// enforced even when Content-Length lies or is absent
			req.Body = &limitedReadCloser{r: io.LimitReader(req.Body, limit+1), c: req.Body, limit: limit}
			return next(c)
		}
	}
}

type limitedReadCloser struct {
	r     io.Reader
	c     io.Closer
	limit int64
	read  int64
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.limit {
		return n, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
	}
	return n, err
}

func (l *limitedReadCloser) Close() error { return l.c.Close() }
