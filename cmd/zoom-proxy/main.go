package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/licht1stein/gozoom/pkg/client"
)

func main() {
	// Configuration from environment
	port := getEnv("PORT", "8080")

	zoomClient, err := client.FromEnvironment()
	if err != nil {
		log.Fatalf("Failed to create Zoom client: %v", err)
	}

	// HTTP Server
	http.HandleFunc("/health", healthHandler)
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/zoom/", zoomProxyHandler(zoomClient))

	addr := ":" + port
	log.Printf("Starting Zoom proxy server on %s", addr)
	log.Printf("Base URL: %s", zoomClient.BaseURL())

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func zoomProxyHandler(zoomClient *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Extract Zoom endpoint from request path
		// Example: /zoom/users/me/meetings -> /users/me/meetings
		endpoint := r.URL.Path[len("/zoom"):]

		query := map[string]string{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		resp, err := zoomClient.Get(r.Context(), endpoint, query, false)
		if err != nil {
			http.Error(w, fmt.Sprintf("Zoom request failed: %v", err), http.StatusBadGateway)
			return
		}

		for key, values := range resp.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}

		w.WriteHeader(resp.StatusCode)
		if _, err := w.Write(resp.Body); err != nil {
			log.Printf("Failed to write response: %v", err)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
