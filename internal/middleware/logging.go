package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces every request, and once it is served, how long it took.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := log.WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"ip":     pkg.ClientIP(r),
			})
			reqLog.Tracef(" ====> request [UA: %s]", r.Header.Get("User-Agent"))

			next.ServeHTTP(w, r)

			reqLog.WithField("took", time.Since(start).String()).Trace(" <==== served")
		})
	}
}
