package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// クライアントIP単位のレート制限。rateは "100-S" のような形式。
// 超えたら429と {"error":"too many requests"} を返す。
func RateLimit(rate string) (echo.MiddlewareFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	store := memory.NewStore()
	instance := limiter.New(store, r)

	limiterMiddleware := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(limitReached),
	)

	return echo.WrapMiddleware(limiterMiddleware.Handler), nil
}

func limitReached(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(errorJSON("too many requests"))
}
