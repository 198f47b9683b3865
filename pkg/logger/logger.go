package logger

import (
	"os"
	"time"

	"buyback/conf"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 基于zap的全局日志，支持文件滚动和控制台双输出

var l *zap.Logger

func init() {
	// 配置加载前先给一个控制台logger，避免空指针
	l, _ = zap.NewDevelopment(zap.AddCallerSkip(1))
}

// InitLogger 根据配置初始化全局logger
func InitLogger(cfg *conf.LogConfig, appName string) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "2006-01-02 15:04:05.000"
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	cores := make([]zapcore.Core, 0, 2)
	if cfg.FileName != "" {
		// 日志滚动
		w := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level))
	}
	if cfg.Console || cfg.FileName == "" {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(os.Stdout), level))
	}

	l = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).
		Named(appName)
}

// Pair 构造一个结构化字段
func Pair(key string, value interface{}) zap.Field {
	switch v := value.(type) {
	case string:
		return zap.String(key, v)
	case int:
		return zap.Int(key, v)
	case int64:
		return zap.Int64(key, v)
	case float64:
		return zap.Float64(key, v)
	case bool:
		return zap.Bool(key, v)
	case time.Duration:
		return zap.Duration(key, v)
	case error:
		return zap.NamedError(key, v)
	default:
		return zap.Any(key, v)
	}
}

func Debug(msg string, fields ...zap.Field) { l.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { l.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l.Fatal(msg, fields...) }

func Debugf(format string, args ...interface{}) { l.Sugar().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { l.Sugar().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { l.Sugar().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { l.Sugar().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { l.Sugar().Fatalf(format, args...) }

// Sync 刷新缓冲，进程退出前调用
func Sync() {
	_ = l.Sync()
}
