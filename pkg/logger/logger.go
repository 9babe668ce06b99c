// Package logger provides a structured, levelled logger built on log/slog.
//
// Production (APP_ENV=production) emits JSON for log aggregators; everything
// else emits human-readable text. Ship logs to MongoDB as well by setting
// MONGO_LOG_URI and calling Connect() once at startup:
//
//	logger.Connect()
//	defer logger.Close()
//	logger.Info("product created", "id", p.ID)
package logger

import (
	"log/slog"
	"os"

	"github.com/danghq/shopdesk/config"
)

var L *slog.Logger

// mongoHandler is non-nil after a successful Connect with MONGO_LOG_URI set.
var mongoHandler *MongoHandler

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// Connect attaches the MongoDB log handler when MONGO_LOG_URI is configured.
// Errors are reported on the plain handler and the process continues with
// stdout-only logging.
func Connect() {
	uri := config.MongoLogURI()
	if uri == "" {
		return
	}

	h, err := NewMongoHandler(uri, config.MongoLogDB(), config.MongoLogCollection())
	if err != nil {
		L.Warn("logger: mongo handler disabled", "error", err)
		return
	}

	mongoHandler = h
	L = slog.New(NewTeeHandler(baseHandler(), h))
	slog.SetDefault(L)
}

// Close flushes and disconnects the MongoDB handler, if any.
func Close() {
	if mongoHandler != nil {
		mongoHandler.Close()
		mongoHandler = nil
	}
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
