package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MerchantRepositoryTestSuite тестовый suite для PostgreSQL repository
type MerchantRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  MerchantRepository
	sqlDB *sql.DB
}

func TestMerchantRepositorySuite(t *testing.T) {
	suite.Run(t, new(MerchantRepositoryTestSuite))
}

func (s *MerchantRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewMerchantRepository(s.db)
}

func (s *MerchantRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

// ===================== GetAllIDs Tests =====================

func (s *MerchantRepositoryTestSuite) TestGetAllIDs_Success() {
	ctx := context.Background()
	id1 := uuid.New()
	id2 := uuid.New()

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow(id1).
		AddRow(id2)

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "merchants" ORDER BY id ASC`)).
		WillReturnRows(rows)

	// Act
	ids, err := s.repo.GetAllIDs(ctx)

	// Assert
	require.NoError(s.T(), err)
	require.Len(s.T(), ids, 2)
	assert.Equal(s.T(), id1, ids[0])
	assert.Equal(s.T(), id2, ids[1])
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *MerchantRepositoryTestSuite) TestGetAllIDs_Empty() {
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"})
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "merchants" ORDER BY id ASC`)).
		WillReturnRows(rows)

	// Act
	ids, err := s.repo.GetAllIDs(ctx)

	// Assert
	require.NoError(s.T(), err)
	assert.Empty(s.T(), ids)
}

func (s *MerchantRepositoryTestSuite) TestGetAllIDs_DBError() {
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "merchants" ORDER BY id ASC`)).
		WillReturnError(sql.ErrConnDone)

	// Act
	ids, err := s.repo.GetAllIDs(ctx)

	// Assert
	assert.Error(s.T(), err)
	assert.Nil(s.T(), ids)
}
