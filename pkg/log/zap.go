package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig holds logger initialization options.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a zap-backed Logger from the given config.
// Invalid levels fall back to info rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var encoderCfg zapcore.EncoderConfig
	if cfg.Mode == "production" {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		if cfg.ColorEnabled {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.sugar.Debug(arg...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.sugar.Info(arg...) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.sugar.Warn(arg...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.sugar.Error(arg...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.sugar.DPanic(arg...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.sugar.Panic(arg...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.sugar.Fatal(arg...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}
