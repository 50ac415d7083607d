package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMatchSegments(t *testing.T) {
	tests := []struct {
		name    string
		request string
		pattern string
		want    bool
	}{
		{"exact match", "api/v1/runs", "api/v1/runs", true},
		{"length mismatch", "api/v1/runs/x", "api/v1/runs", false},
		{"single wildcard", "api/v1/runs/abc/report", "api/v1/runs/*/report", true},
		{"wildcard wrong suffix", "api/v1/runs/abc/errors", "api/v1/runs/*/report", false},
		{"trailing wildcard swallows rest", "api/v1/runs/abc/report", "api/v1/runs/*", true},
		{"trailing wildcard matches bare prefix", "api/v1/runs", "api/v1/runs/*", true},
		{"trailing wildcard rejects other prefix", "api/v2/runs/abc", "api/v1/runs/*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchSegments(strings.Split(tt.request, "/"), strings.Split(tt.pattern, "/"))
			if got != tt.want {
				t.Errorf("matchSegments(%q, %q) = %v, want %v", tt.request, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestRouter_Dispatch(t *testing.T) {
	r := New()
	r.GET("/api/v1/runs", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("list"))
	})
	r.GET("/api/v1/runs/*/report", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("report"))
	})
	r.GET("/api/v1/runs/*", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("one"))
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"list route", http.MethodGet, "/api/v1/runs", http.StatusOK, "list"},
		{"specific route wins over generic", http.MethodGet, "/api/v1/runs/abc/report", http.StatusOK, "report"},
		{"generic run route", http.MethodGet, "/api/v1/runs/abc", http.StatusOK, "one"},
		{"unknown path", http.MethodGet, "/api/v1/nope", http.StatusNotFound, ""},
		{"method not allowed", http.MethodPost, "/api/v1/runs", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
