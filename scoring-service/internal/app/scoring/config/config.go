package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config содержит все настройки приложения Scoring Service
// Включает конфигурацию для HTTP сервера, PostgreSQL, внешних ML endpoint'ов и JWT
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	ML       MLConfig
	JWT      JWTConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8084)
}

// DatabaseConfig - настройки подключения к PostgreSQL
// Пайплайны читают и обновляют строки customers, merchants и reviews
type DatabaseConfig struct {
	Host     string // Хост PostgreSQL
	Port     string // Порт PostgreSQL
	User     string // Имя пользователя БД
	Password string // Пароль БД
	DBName   string // Имя базы данных
	SSLMode  string // Режим SSL (disable/require/verify-full)
}

// MLConfig - адреса внешних ML endpoint'ов скоринга
// Модели хостятся отдельно; пайплайн только вызывает их по HTTP
type MLConfig struct {
	CredibilityURL string // Endpoint модели кредибилити покупателя
	MerchantURL    string // Endpoint модели грейдинга продавца
	TimeoutSec     int    // Таймаут HTTP запроса к модели в секундах
}

// JWTConfig - настройки для проверки JWT токенов на админ-маршрутах
type JWTConfig struct {
	Secret string // Секретный ключ для проверки JWT токенов (должен совпадать с identity-сервисом)
}

// Load загружает конфигурацию из переменных окружения
// Возвращает ошибку, если не удалось распарсить значения
func Load() (*Config, error) {
	mlTimeout, err := strconv.Atoi(getEnv("ML_TIMEOUT_SEC", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ML_TIMEOUT_SEC value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8084"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "trustmarket"),
			Password: getEnv("DB_PASSWORD", "trustmarket"),
			DBName:   getEnv("DB_NAME", "trustmarket"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		ML: MLConfig{
			CredibilityURL: getEnv("ML_CREDIBILITY_URL", "https://av3005--customer-api-space.hf.space/api/predict/"),
			MerchantURL:    getEnv("ML_MERCHANT_URL", "https://merchant-api-tcmh.onrender.com/predict_merchant"),
			TimeoutSec:     mlTimeout,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		},
	}, nil
}

// DSN возвращает строку подключения к PostgreSQL в формате libpq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Address возвращает адрес сервера в формате host:port для HTTP сервера
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
