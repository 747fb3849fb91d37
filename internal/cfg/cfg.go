package cfg

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DRSN-tech/inventory/pkg/e"
	"github.com/DRSN-tech/inventory/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Log     *LogCfg
	Catalog *CatalogCfg
}

type LogCfg struct {
	Level slog.Level
	JSON  bool // true — JSON-формат, false — текстовый
}

type CatalogCfg struct {
	ValidateProducts bool // Использовать валидирующую фабрику продуктов
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	logCfg, err := loadLogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Log:     logCfg,
		Catalog: catalog,
	}, nil
}

func loadLogCfg(log logger.Logger) (*LogCfg, error) {
	const (
		defaultLevel  = "info"
		defaultFormat = "text"
	)

	level, err := parseLevel(getEnvOrDefault("LOG_LEVEL", defaultLevel))
	if err != nil {
		log.Errorf(err, "invalid LOG_LEVEL")
		return nil, e.Wrap("LOG_LEVEL", err)
	}

	var json bool
	switch format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", defaultFormat)); format {
	case "text":
	case "json":
		json = true
	default:
		err := e.Wrap("LOG_FORMAT", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid LOG_FORMAT: %s", format)
		return nil, err
	}

	return &LogCfg{
		Level: level,
		JSON:  json,
	}, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultValidateProducts = false
	)

	validate, err := parseBoolEnv("VALIDATE_PRODUCTS", defaultValidateProducts)
	if err != nil {
		log.Errorf(err, "invalid VALIDATE_PRODUCTS")
		return nil, e.Wrap("VALIDATE_PRODUCTS", err)
	}

	return &CatalogCfg{
		ValidateProducts: validate,
	}, nil
}

// parseLevel преобразует строковое имя уровня в slog.Level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, e.ErrIncorrectEnvVariable
	}
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return boolValue, nil
}
