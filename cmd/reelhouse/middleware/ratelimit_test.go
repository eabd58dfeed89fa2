package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/reelhouse/reelhouse/common/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger implements the ratelimit.Logger interface
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Info(msg string, keysAndValues ...interface{}) {
	l.t.Logf("[INFO] %s %v", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...interface{}) {
	l.t.Logf("[ERROR] %s %v", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.t.Logf("[WARN] %s %v", msg, keysAndValues)
}

func (l *testLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.t.Logf("[DEBUG] %s %v", msg, keysAndValues)
}

func invokeUpload(t *testing.T, mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	handlerCalled := false
	next := func(c echo.Context) error {
		handlerCalled = true
		return c.JSON(http.StatusOK, map[string]string{"status": "uploaded"})
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, mw(next)(c))
	return rec, handlerCalled
}

func TestUploadRateLimit_NilLimiterDisablesCheck(t *testing.T) {
	mw := UploadRateLimit(nil, 10, 60)

	rec, handlerCalled := invokeUpload(t, mw)

	assert.True(t, handlerCalled)
	assert.Equal(t, 200, rec.Code)
}

func TestUploadRateLimit_FailsOpenWhenRedisUnreachable(t *testing.T) {
	// Nothing listens on this port, so every limiter check errors
	raw := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { raw.Close() })

	limiter := ratelimit.NewRateLimiter(raw, &testLogger{t: t})
	mw := UploadRateLimit(limiter, 10, 60)

	rec, handlerCalled := invokeUpload(t, mw)

	// On limiter errors the request is allowed through
	assert.True(t, handlerCalled)
	assert.Equal(t, 200, rec.Code)
}
