package util

import (
	"context"
	"testing"
	"time"

	"trustmarket/catalog-service/internal/app/catalog/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RedisClientTestSuite тестовый suite для кеша категорий
type RedisClientTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *RedisClient
}

func TestRedisClientSuite(t *testing.T) {
	suite.Run(t, new(RedisClientTestSuite))
}

func (s *RedisClientTestSuite) SetupSuite() {
	var err error
	s.miniRedis, err = miniredis.Run()
	require.NoError(s.T(), err)

	s.client, err = NewRedisClient(s.miniRedis.Addr(), "", 0)
	require.NoError(s.T(), err)
}

func (s *RedisClientTestSuite) SetupTest() {
	s.miniRedis.FlushAll()
}

func (s *RedisClientTestSuite) TearDownSuite() {
	s.client.Close()
	s.miniRedis.Close()
}

// ===================== Categories Cache Tests =====================

func (s *RedisClientTestSuite) TestSetAndGetCategories() {
	ctx := context.Background()

	// Arrange
	categories := []entity.Category{
		{ID: uuid.New(), Name: "Electronics", CreatedAt: time.Now().Truncate(time.Second)},
		{ID: uuid.New(), Name: "Books", CreatedAt: time.Now().Truncate(time.Second)},
	}

	// Act
	err := s.client.SetCategories(ctx, categories, time.Hour)
	s.NoError(err)

	result, err := s.client.GetCategories(ctx)

	// Assert
	s.NoError(err)
	s.Len(result, 2)
	s.Equal("Electronics", result[0].Name)
	s.Equal(categories[0].ID, result[0].ID)
}

func (s *RedisClientTestSuite) TestGetCategories_EmptyCache() {
	ctx := context.Background()

	// Act
	result, err := s.client.GetCategories(ctx)

	// Assert - пустой кеш это не ошибка
	s.NoError(err)
	s.Nil(result)
}

func (s *RedisClientTestSuite) TestGetCategories_ExpiredTTL() {
	ctx := context.Background()

	// Arrange
	categories := []entity.Category{{ID: uuid.New(), Name: "Toys"}}
	err := s.client.SetCategories(ctx, categories, time.Minute)
	s.NoError(err)

	// Перематываем время в miniredis за пределы TTL
	s.miniRedis.FastForward(2 * time.Minute)

	// Act
	result, err := s.client.GetCategories(ctx)

	// Assert
	s.NoError(err)
	s.Nil(result)
}

func (s *RedisClientTestSuite) TestDeleteCategories() {
	ctx := context.Background()

	// Arrange
	categories := []entity.Category{{ID: uuid.New(), Name: "Garden"}}
	err := s.client.SetCategories(ctx, categories, time.Hour)
	s.NoError(err)

	// Act
	err = s.client.DeleteCategories(ctx)
	s.NoError(err)

	// Assert
	result, err := s.client.GetCategories(ctx)
	s.NoError(err)
	s.Nil(result)
}
