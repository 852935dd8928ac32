// Package logging builds the zap logger used across chess-arbiter.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
)

// New builds a console logger writing to cfg.LogFile at the configured
// level. Verbosity 0 returns a no-op logger.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Verbosity == 0 {
		return zap.NewNop(), nil
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	w := cfg.LogFile
	if w == nil {
		w = os.Stderr
	}

	return zap.New(newCore(w, level)), nil
}

func newCore(w io.Writer, level zapcore.Level) zapcore.Core {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
}
