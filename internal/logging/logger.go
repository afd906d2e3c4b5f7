// Package logging wraps zap with the small surface the CLI needs.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// structured key-value logger
type Logger struct {
	*zap.SugaredLogger
}

type Options struct {
	Level  string    // debug, info, warn, error
	Format string    // console, json or auto
	Output io.Writer // defaults to stderr
}

// console logger at debug level when verbose, info otherwise
func NewLogger(verbose bool) *Logger {
	level := "info"
	if verbose {
		level = "debug"
	}

	logger, err := New(Options{Level: level, Format: FormatConsole})
	if err != nil {
		return Nop()
	}
	return logger
}

func New(opts Options) (*Logger, error) {
	levelText := opts.Level
	if levelText == "" {
		levelText = "info"
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encoder, err := newEncoder(opts.Format, out)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	return FromCore(core), nil
}

// wraps an existing core, e.g. zaptest/observer in tests
func FromCore(core zapcore.Core) *Logger {
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// valid log level and format names, for config validation
func ValidLevel(level string) bool {
	_, err := zapcore.ParseLevel(level)
	return err == nil
}

func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", FormatAuto, FormatConsole, FormatJSON:
		return true
	default:
		return false
	}
}

func newEncoder(format string, out io.Writer) (zapcore.Encoder, error) {
	switch strings.ToLower(format) {
	case "", FormatAuto:
		if isTerminal(out) {
			return consoleEncoder(), nil
		}
		return jsonEncoder(), nil
	case FormatConsole:
		return consoleEncoder(), nil
	case FormatJSON:
		return jsonEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q: use console, json or auto", format)
	}
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.CallerKey = ""
	return zapcore.NewConsoleEncoder(cfg)
}

func jsonEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
