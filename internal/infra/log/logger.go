// Package logs builds the process-wide slog logger from the env section.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"marketplace/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for New, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New writes JSON lines to stdout, or key=value text when env.log.pretty is set.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config.Env)
}

func newLogger(w io.Writer, env config.EnvConfig) (*slog.Logger, error) {
	level, err := parseLogLevel(env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: env.Debug,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := make([]slog.Attr, 0, 2)
	if env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", env.ServiceName))
	}
	if env.Env != "" {
		attrs = append(attrs, slog.String("env", env.Env))
	}

	return slog.New(handler.WithAttrs(attrs)), nil
}

//nolint:gochecknoglobals
var logLevels = map[string]slog.Level{
	"":        slog.LevelInfo,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// parseLogLevel accepts the usual level names in any case. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	parsed, ok := logLevels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}

	return parsed, nil
}
