package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит все настройки приложения Background Worker Service
// Включает конфигурацию для PostgreSQL, Redis, Kafka и scoring-service API
type Config struct {
	Database     DatabaseConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	ScoringAPI   ScoringAPIConfig
	CronSchedule CronScheduleConfig
}

// DatabaseConfig - настройки подключения к PostgreSQL
// Worker читает список продавцов для ночного пересчёта грейдов
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string // Режим SSL (disable/require/verify-full)
}

// RedisConfig - настройки подключения к Redis
// Используется для дедупликации обработанных событий
type RedisConfig struct {
	Host     string
	Password string
	Port     string
	DB       int           // Номер БД Redis
	TTL      time.Duration // Срок хранения отметок об обработке событий
}

// KafkaConfig - настройки Kafka для подписки на события
// Слушает топик review_events для обработки REVIEW_CREATED
type KafkaConfig struct {
	Brokers  []string // Список брокеров Kafka (формат: host:port)
	Topic    string   // Топик для прослушивания (review_events)
	GroupID  string   // ID группы потребителей для распределения нагрузки
	MinBytes int      // Минимум байт для fetch запроса
	MaxBytes int      // Максимум байт для fetch запроса
}

// ScoringAPIConfig - настройки HTTP клиента scoring-service
type ScoringAPIConfig struct {
	BaseURL string // Базовый URL scoring-service
	Timeout int    // Таймаут запроса в секундах
}

// CronScheduleConfig - настройки расписания cron задач
type CronScheduleConfig struct {
	RegradeMerchants string // Расписание ночного пересчёта грейдов продавцов
}

// Load загружает конфигурацию из переменных окружения
// Возвращает ошибку, если не удалось распарсить значения
func Load() (*Config, error) {
	// Срок хранения отметок дедупликации (по умолчанию 24 часа)
	ttlHours := getEnvInt("REDIS_PROCESSED_TTL_HOURS", 24)

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "trustmarket"),
			Password: getEnv("DB_PASSWORD", "trustmarket"),
			DBName:   getEnv("DB_NAME", "trustmarket"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 2), // Отдельная БД для отметок дедупликации
			TTL:      time.Duration(ttlHours) * time.Hour,
		},
		Kafka: KafkaConfig{
			Brokers:  []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:    getEnv("KAFKA_TOPIC", "review_events"),
			GroupID:  getEnv("KAFKA_GROUP_ID", "background-worker-group"),
			MinBytes: getEnvInt("KAFKA_MIN_BYTES", 1),    // 1 byte minimum
			MaxBytes: getEnvInt("KAFKA_MAX_BYTES", 10e6), // 10MB maximum
		},
		ScoringAPI: ScoringAPIConfig{
			BaseURL: getEnv("SCORING_API_URL", "http://localhost:8084"),
			Timeout: getEnvInt("SCORING_API_TIMEOUT", 30),
		},
		CronSchedule: CronScheduleConfig{
			// По умолчанию пересчитываем грейды каждую ночь в 02:00
			RegradeMerchants: getEnv("CRON_REGRADE_MERCHANTS", "0 0 2 * * *"),
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

// Address возвращает адрес Redis в формате host:port
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает значение переменной окружения как int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
