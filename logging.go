package avif

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logMu  sync.RWMutex
	logger *zap.SugaredLogger // nil means logging is disabled
)

// SetLogger installs l as the package-wide logger used to report stage
// transitions and recoverable anomalies during decode. Pass nil to
// disable logging (the default). Decode never logs pixel data.
func SetLogger(l *zap.SugaredLogger) {
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

// SetLogFile is a convenience wrapper around SetLogger that rotates log
// output through a lumberjack.Logger, matching the on-disk rotation
// policy used by the CLI front end (see cmd/avifinfo).
func SetLogFile(path string, maxSizeMB, maxBackups, maxAgeDays int) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	SetLogger(newZapLogger(w).Sugar())
}

// DisableLogging turns off all package logging.
func DisableLogging() { SetLogger(nil) }

func newZapLogger(w io.Writer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

func currentLogger() *zap.SugaredLogger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

func logDebug(msg string, kv ...interface{}) {
	if l := currentLogger(); l != nil {
		l.Debugw(msg, kv...)
	}
}

func logWarn(msg string, kv ...interface{}) {
	if l := currentLogger(); l != nil {
		l.Warnw(msg, kv...)
	}
}
