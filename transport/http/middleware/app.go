package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"safar/config"
	"safar/infras/otel"
	"safar/shared/constant"
)

const otelHTTPScopeName = "http"

type App interface {
	Tracing(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewApp(otel otel.Otel, config *config.Config) App {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

// Tracing opens a span per request and records the routing attributes on it.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.UserAgent(),
			"http.host":       request.Host,
			"http.source":     clientIP(request),
		})

		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
		next.ServeHTTP(recorder, request.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": recorder.status,
		})

		if rctx := chi.RouteContext(ctx); rctx != nil {
			scope.SetAttributes(map[string]any{
				"http.route": rctx.RoutePattern(),
			})
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// clientIP prefers the proxy headers the deployment sets, falling back to the
// socket address.
func clientIP(request *http.Request) string {
	if ip := request.Header.Get(constant.RequestHeaderRealIP); ip != "" {
		return ip
	}

	if ip := request.Header.Get(constant.RequestHeaderForwardedFor); ip != "" {
		return ip
	}

	return request.RemoteAddr
}
