package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 全局日志实例，未调用 Init 前为 no-op，库代码与测试可直接使用
var Logger = zap.NewNop()

// Init 按配置创建全局日志。output 取 stdout、stderr 或 file
func Init(level, format, output, filePath string) error {
	sink, err := newSink(output, filePath)
	if err != nil {
		return err
	}
	core := zapcore.NewCore(newEncoder(format), sink, parseLevel(level))
	Logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	if format == "json" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func newSink(output, filePath string) (zapcore.WriteSyncer, error) {
	switch output {
	case "file":
		if filePath == "" {
			return nil, fmt.Errorf("log output is file but file path is empty")
		}
		f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return zapcore.AddSync(f), nil
	case "stderr":
		// CLI 的结果输出占用 stdout
		return zapcore.Lock(os.Stderr), nil
	default:
		return zapcore.Lock(os.Stdout), nil
	}
}

// parseLevel 无法识别时按 info 处理
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { Logger.Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { Logger.Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }

// Fatal 记录后退出进程
func Fatal(msg string, fields ...zap.Field) { Logger.Fatal(msg, fields...) }
