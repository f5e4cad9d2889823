// =============================================================================
// WhiteSource CSV Agent - Logging Module
// =============================================================================
//
// This module builds the console logger used by the agent.
//
// OUTPUT FORMAT:
//   [INFO] Updating White Source
//   [DEBUG] Found dependency g:a:v
//   [ERROR] missing API key
//
// DEBUG lines are only written when debug=true in wss.properties.
//
// =============================================================================

package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// LOGGER CONSTRUCTORS
// =============================================================================

// New builds a sugared zap logger writing plain level-tagged lines to w.
func New(debug bool, w io.Writer) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core).Sugar()
}

// NewConsole builds the logger the CLI uses, writing to stdout.
func NewConsole(debug bool) *zap.SugaredLogger {
	return New(debug, os.Stdout)
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// =============================================================================
// ENCODING
// =============================================================================

// bracketLevelEncoder writes the level as "[INFO]".
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}
