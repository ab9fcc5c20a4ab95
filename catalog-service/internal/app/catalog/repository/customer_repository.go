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

type customerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository создает новый репозиторий покупателей
func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &customerRepository{db: db}
}

// GetByID получает покупателя по ID
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, join_date, credibility_score,
		       customer_tenure_months, purchase_value_rupees, total_orders, total_reviews
		FROM customers
		WHERE id = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.JoinDate,
		&customer.CredibilityScore,
		&customer.CustomerTenureMonths,
		&customer.PurchaseValueRupees,
		&customer.TotalOrders,
		&customer.TotalReviews,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}

	return &customer, nil
}

// GetOrders получает историю заказов покупателя, свежие первыми
func (r *customerRepository) GetOrders(ctx context.Context, customerID uuid.UUID) ([]entity.Order, error) {
	query := `
		SELECT id, order_number, customer_id, status, total_price, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.CustomerID,
			&order.Status,
			&order.TotalPrice,
			&order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
