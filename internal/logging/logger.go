package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the verbose logger.
type Options struct {
	Verbose bool
	NoColor bool
	// Writer receives log lines when LogFile is empty. Defaults to stderr.
	Writer  io.Writer
	LogFile string
}

// New builds the session logger. Without Verbose it returns a no-op logger.
// The returned close function flushes and releases the sink.
func New(opts Options) (*zap.Logger, func(), error) {
	if !opts.Verbose {
		return zap.NewNop(), func() {}, nil
	}

	var sink zapcore.WriteSyncer
	release := func() {}
	colored := false
	if opts.LogFile != "" {
		file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(file)
		release = func() { _ = file.Close() }
	} else {
		writer := opts.Writer
		if writer == nil {
			writer = os.Stderr
		}
		sink = zapcore.AddSync(writer)
		colored = useColor(opts.NoColor)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if colored {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, zapcore.DebugLevel)
	logger := zap.New(core).Named("quizzer")
	return logger, func() {
		_ = logger.Sync()
		release()
	}, nil
}

// useColor honours --no-color and the usual environment switches.
func useColor(noColor bool) bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return !strings.EqualFold(os.Getenv("CLICOLOR"), "0")
}
