//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"trustmarket/background-worker-service/internal/app/background-worker/entity"
	"trustmarket/background-worker-service/internal/app/background-worker/repository"
	"trustmarket/background-worker-service/internal/app/background-worker/service"
	"trustmarket/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// WorkerIntegrationTestSuite проверяет обработку событий с реальными PostgreSQL и Redis
// Scoring-service подменяется httptest сервером
type WorkerIntegrationTestSuite struct {
	suite.Suite
	db          *gorm.DB
	redisClient *redis.Client

	scoringServer *httptest.Server
	mu            sync.Mutex
	scoringCalls  []string // пути полученных запросов
	scoringFail   bool
}

func TestWorkerIntegrationSuite(t *testing.T) {
	suite.Run(t, new(WorkerIntegrationTestSuite))
}

func (s *WorkerIntegrationTestSuite) SetupSuite() {
	logger.InitWithWriter("background-worker-service", "error", os.Stderr)

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=trustmarket_test sslmode=disable"
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(s.T(), err, "Failed to connect to PostgreSQL")
	s.db = db

	require.NoError(s.T(), db.AutoMigrate(&entity.Merchant{}))

	redisAddr := os.Getenv("TEST_REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6380"
	}
	s.redisClient = redis.NewClient(&redis.Options{Addr: redisAddr, DB: 14})
	require.NoError(s.T(), s.redisClient.Ping(context.Background()).Err(), "Failed to connect to Redis")

	s.scoringServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.scoringCalls = append(s.scoringCalls, r.URL.Path)
		fail := s.scoringFail
		s.mu.Unlock()

		if fail {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error": "ML model request failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/scoring/customer-credibility":
			w.Write([]byte(`{"success": true, "credibility_score": 82, "updated_purchase_value": 599.99}`))
		case "/scoring/merchant-grade":
			w.Write([]byte(`{"success": true, "grade": "gold", "trust_score": 88.5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (s *WorkerIntegrationTestSuite) SetupTest() {
	require.NoError(s.T(), s.redisClient.FlushDB(context.Background()).Err())
	require.NoError(s.T(), s.db.Exec("TRUNCATE merchants").Error)

	s.mu.Lock()
	s.scoringCalls = nil
	s.scoringFail = false
	s.mu.Unlock()
}

func (s *WorkerIntegrationTestSuite) TearDownSuite() {
	s.scoringServer.Close()
	s.redisClient.Close()
}

func (s *WorkerIntegrationTestSuite) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scoringCalls)
}

func (s *WorkerIntegrationTestSuite) newEventService() *service.ReviewEventService {
	processedRepo := repository.NewProcessedEventRepository(s.redisClient, time.Hour)
	client := service.NewScoringAPIClient(s.scoringServer.URL, 5)
	return service.NewReviewEventService(processedRepo, client)
}

// ===================== Review Event Tests =====================

func (s *WorkerIntegrationTestSuite) TestProcessReviewEvent_EndToEnd() {
	ctx := context.Background()
	svc := s.newEventService()

	event := &entity.ReviewEvent{
		EventType:    entity.EventTypeReviewCreated,
		ReviewID:     uuid.New().String(),
		CustomerID:   uuid.New().String(),
		ProductPrice: 99.99,
	}

	// Act
	err := svc.ProcessReviewEvent(ctx, event)

	// Assert
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, s.callCount())

	// Отметка дедупликации записана в Redis
	exists, err := s.redisClient.Exists(ctx, entity.GetRedisKeyForProcessedEvent(event.ReviewID)).Result()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), exists)
}

func (s *WorkerIntegrationTestSuite) TestProcessReviewEvent_DuplicateNotForwarded() {
	ctx := context.Background()
	svc := s.newEventService()

	event := &entity.ReviewEvent{
		EventType:    entity.EventTypeReviewCreated,
		ReviewID:     uuid.New().String(),
		CustomerID:   uuid.New().String(),
		ProductPrice: 49.5,
	}

	require.NoError(s.T(), svc.ProcessReviewEvent(ctx, event))

	// Act - повторная доставка того же события
	err := svc.ProcessReviewEvent(ctx, event)

	// Assert - второй вызов scoring-service не случился
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, s.callCount())
}

func (s *WorkerIntegrationTestSuite) TestProcessReviewEvent_FailureAllowsRetry() {
	ctx := context.Background()
	svc := s.newEventService()

	event := &entity.ReviewEvent{
		EventType:  entity.EventTypeReviewCreated,
		ReviewID:   uuid.New().String(),
		CustomerID: uuid.New().String(),
	}

	s.mu.Lock()
	s.scoringFail = true
	s.mu.Unlock()

	// Act - первая попытка падает
	err := svc.ProcessReviewEvent(ctx, event)
	require.Error(s.T(), err)

	s.mu.Lock()
	s.scoringFail = false
	s.mu.Unlock()

	// Assert - отметка снята, ретрай проходит
	err = svc.ProcessReviewEvent(ctx, event)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, s.callCount())
}

// ===================== Regrade Tests =====================

func (s *WorkerIntegrationTestSuite) TestRegradeAllMerchants_EndToEnd() {
	ctx := context.Background()

	merchants := []entity.Merchant{
		{ID: uuid.New(), Name: "TechWorld"},
		{ID: uuid.New(), Name: "BudgetBazaar"},
	}
	require.NoError(s.T(), s.db.Create(&merchants).Error)

	merchantRepo := repository.NewMerchantRepository(s.db)
	client := service.NewScoringAPIClient(s.scoringServer.URL, 5)
	svc := service.NewRegradeService(merchantRepo, client)

	// Act
	summary, err := svc.RegradeAllMerchants(ctx)

	// Assert
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, summary.Total)
	assert.Equal(s.T(), 2, summary.Succeeded)
	assert.Equal(s.T(), 0, summary.Failed)
	assert.Equal(s.T(), 2, s.callCount())
}
