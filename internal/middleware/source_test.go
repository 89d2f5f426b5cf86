package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cat-registry/internal/domain/activity"
)

func TestActivitySource(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   activity.Source
	}{
		{name: "no header", header: "", want: activity.SourceAPI},
		{name: "catctl", header: "cli", want: activity.SourceCLI},
		{name: "catctl mixed case", header: " CLI ", want: activity.SourceCLI},
		{name: "unknown value", header: "browser", want: activity.SourceAPI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got activity.Source
			h := ActivitySource(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = activity.SourceFrom(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/cats", nil)
			if tc.header != "" {
				req.Header.Set(activity.SourceHeader, tc.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
