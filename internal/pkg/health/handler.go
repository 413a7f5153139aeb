package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker reports the health of one dependency
type Checker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc struct {
	CheckerName string
	Fn          func(ctx context.Context) error
}

func (c CheckerFunc) Name() string { return c.CheckerName }

func (c CheckerFunc) CheckHealth(ctx context.Context) error {
	if c.Fn == nil {
		return nil
	}
	return c.Fn(ctx)
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterHealthEndpoints registers /health and /health/detailed
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...Checker) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     os.Getenv("APP_VERSION"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if info.Version == "" {
		info.Version = "development"
	}

	e.GET("/health", func(c echo.Context) error {
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				deps[checker.Name()] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				deps[checker.Name()] = "ok"
			}
		}

		info.ServerTime = time.Now()
		return c.JSON(status, map[string]interface{}{
			"build":        info,
			"dependencies": deps,
		})
	})
}
