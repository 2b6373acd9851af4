package httphandler

import "net/http"

// NoStore keeps intermediaries from caching generated feeds: every
// request reflects the catalog at the moment it was served.
func NoStore(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}
