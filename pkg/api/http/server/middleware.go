package server

import (
	"log"
	"net/http"
	"time"
)

// loggingMiddleware shims in a handler middleware that logs requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Println("[HTTP]", r.Method, r.RequestURI, r.ContentLength, time.Since(start))
	})
}
