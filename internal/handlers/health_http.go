package handlers

import (
	"context"
	"net/http"
	"time"

	"insurance-portal/internal/utils"
)

// Health reports ok; when ping is set (the Redis revocation store) it must
// answer within two seconds.
func Health(ping func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "error": err.Error()})
				return
			}
		}
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
