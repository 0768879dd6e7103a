// Package logging настраивает структурированное логирование на zap.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger глобальный логгер; до Initialize ничего не пишет
	Logger = zap.NewNop()

	closeOutput = func() {}
)

// Config настройки логирования
type Config struct {
	// Level минимальный уровень (debug, info, warn, error)
	Level string

	// Format формат вывода (json, console)
	Format string

	// Output куда писать: stdout, stderr или путь к файлу
	Output string
}

// DefaultConfig консольный вывод в stderr с уровнем info
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// New создает логгер, не трогая глобальный. Возвращаемая функция
// закрывает файл вывода, если он был открыт.
func New(cfg Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	// zap.Open понимает stdout, stderr и пути к файлам
	writeSyncer, closeFn, err := zap.Open(output)
	if err != nil {
		return nil, nil, err
	}

	return zap.New(zapcore.NewCore(encoder, writeSyncer, level), zap.AddCaller()), closeFn, nil
}

// Initialize заменяет глобальный логгер и закрывает вывод предыдущего
func Initialize(cfg Config) error {
	logger, closeFn, err := New(cfg)
	if err != nil {
		return err
	}

	previous := closeOutput
	_ = Logger.Sync()
	Logger, closeOutput = logger, closeFn
	previous()
	return nil
}

// Close сбрасывает буферы, закрывает вывод и возвращает глобальный логгер в no-op
func Close() {
	_ = Logger.Sync()
	closeOutput()
	Logger, closeOutput = zap.NewNop(), func() {}
}

// Debug пишет сообщение уровня debug
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Info пишет сообщение уровня info
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Warn пишет сообщение уровня warn
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Error пишет сообщение уровня error
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}
