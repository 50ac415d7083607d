package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// ANSI color codes for request logging.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// HandlerFunc is the handler signature registered on the router.
type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method   string
	segments []string
	handler  HandlerFunc
	prefix   http.Handler
}

// Router is a small method-aware mux with wildcard path segments
// ("*" matches one segment, a trailing "*" matches the rest) and
// colored request logging.
type Router struct {
	routes []route
}

// New creates an empty router.
func New() *Router {
	return &Router{}
}

func (r *Router) register(method, path string, handler HandlerFunc) {
	r.routes = append(r.routes, route{
		method:   method,
		segments: strings.Split(strings.Trim(path, "/"), "/"),
		handler:  handler,
	})
}

// GET registers a GET route.
func (r *Router) GET(path string, handler HandlerFunc) { r.register(http.MethodGet, path, handler) }

// POST registers a POST route.
func (r *Router) POST(path string, handler HandlerFunc) { r.register(http.MethodPost, path, handler) }

// DELETE registers a DELETE route.
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Mount registers a plain http.Handler for every path under prefix.
func (r *Router) Mount(prefix string, handler http.Handler) {
	r.routes = append(r.routes, route{
		segments: append(strings.Split(strings.Trim(prefix, "/"), "/"), "*"),
		prefix:   handler,
	})
}

// ServeHTTP dispatches the request, logging method, path, status and
// duration for every call.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	segments := strings.Split(strings.Trim(req.URL.Path, "/"), "/")

	matched := false
	pathExists := false
	for _, rt := range r.routes {
		if !matchSegments(segments, rt.segments) {
			continue
		}
		if rt.prefix != nil {
			rt.prefix.ServeHTTP(lrw, req)
			matched = true
			break
		}
		pathExists = true
		if rt.method == req.Method {
			rt.handler(lrw, req)
			matched = true
			break
		}
	}

	if !matched {
		if pathExists {
			http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
		} else {
			http.Error(lrw, "Not Found", http.StatusNotFound)
		}
	}

	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, time.Since(start), colorReset,
	)
}

// matchSegments matches a request path against a route pattern. A "*"
// segment matches any single segment; a trailing "*" swallows the
// remainder of the path.
func matchSegments(request, pattern []string) bool {
	if len(pattern) > 0 && pattern[len(pattern)-1] == "*" {
		if len(request) < len(pattern)-1 {
			return false
		}
		for i := 0; i < len(pattern)-1; i++ {
			if pattern[i] != "*" && request[i] != pattern[i] {
				return false
			}
		}
		return true
	}

	if len(request) != len(pattern) {
		return false
	}
	for i, seg := range pattern {
		if seg != "*" && request[i] != seg {
			return false
		}
	}
	return true
}

// Start runs the HTTP server on addr.
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r))
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
