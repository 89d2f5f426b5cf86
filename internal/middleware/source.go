package middleware

import (
	"net/http"

	"cat-registry/internal/domain/activity"
)

// ActivitySource marca las mutaciones hechas por HTTP como origen "api",
// salvo que el cliente se identifique como catctl con activity.SourceHeader.
func ActivitySource(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		src := activity.SourceAPI
		if activity.ParseSource(r.Header.Get(activity.SourceHeader)) == activity.SourceCLI {
			src = activity.SourceCLI
		}
		ctx := activity.WithSource(r.Context(), src)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
