package repository

import (
	"context"
	"errors"
	"fmt"

	"trustmarket/catalog-service/internal/app/catalog/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type merchantRepository struct {
	db *pgxpool.Pool
}

// NewMerchantRepository создает новый репозиторий продавцов
func NewMerchantRepository(db *pgxpool.Pool) MerchantRepository {
	return &merchantRepository{db: db}
}

// GetAll получает всех продавцов, отсортированных по имени
func (r *merchantRepository) GetAll(ctx context.Context) ([]entity.Merchant, error) {
	query := `SELECT id, name, credit_tag, created_at FROM merchants ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchants: %w", err)
	}
	defer rows.Close()

	var merchants []entity.Merchant
	for rows.Next() {
		var merchant entity.Merchant
		if err := rows.Scan(&merchant.ID, &merchant.Name, &merchant.CreditTag, &merchant.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan merchant: %w", err)
		}
		merchants = append(merchants, merchant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating merchants: %w", err)
	}

	return merchants, nil
}

// GetByID получает продавца по ID
func (r *merchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	query := `SELECT id, name, credit_tag, created_at FROM merchants WHERE id = $1`

	var merchant entity.Merchant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&merchant.ID,
		&merchant.Name,
		&merchant.CreditTag,
		&merchant.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant by id: %w", err)
	}

	return &merchant, nil
}
