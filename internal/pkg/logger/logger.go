package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the encoder and minimum level.
type Config struct {
	// Env is "dev" for a console encoder or "prod" for JSON.
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
	// Service is added to every entry when set.
	Service string `yaml:"service"`
}

// New builds an elog component writing to stderr.
func New(cfg Config) (*elog.Component, error) {
	core, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	l := FromCore(core)
	if cfg.Service != "" {
		l = l.With(elog.String("service", cfg.Service))
	}
	return l, nil
}

// FromCore wraps an existing zap core, tests pass an observer core here.
func FromCore(core zapcore.Core) *elog.Component {
	return elog.DefaultContainer().Build(elog.WithZapCore(core))
}

func Nop() *elog.Component {
	return FromCore(zapcore.NewNopCore())
}

func newCore(cfg Config) (zapcore.Core, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if strings.EqualFold(cfg.Env, "prod") {
		ecfg := zap.NewProductionEncoderConfig()
		ecfg.EncodeTime = zapcore.ISO8601TimeEncoder
		ecfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewJSONEncoder(ecfg)
	} else {
		ecfg := zap.NewDevelopmentEncoderConfig()
		ecfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ecfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		ecfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewConsoleEncoder(ecfg)
	}
	return zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level)), nil
}

func parseLevel(lvl string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", lvl)
	}
}
