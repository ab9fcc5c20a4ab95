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

type productRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository создает новый репозиторий товаров
func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{db: db}
}

// GetAll получает все товары, свежие первыми
func (r *productRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, category_id, name, description, image_url, rating, created_at
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID получает товар по ID
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, category_id, name, description, image_url, rating, created_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Description,
		&product.ImageURL,
		&product.Rating,
		&product.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	return &product, nil
}

// GetByCategoryID получает все товары категории
func (r *productRepository) GetByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]entity.Product, error) {
	query := `
		SELECT id, category_id, name, description, image_url, rating, created_at
		FROM products
		WHERE category_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetOffers получает предложения всех продавцов по товару с их грейдами
// JOIN с merchants отдаёт имя и credit_tag для витрины сравнения цен
func (r *productRepository) GetOffers(ctx context.Context, productID uuid.UUID) ([]entity.ProductOffer, error) {
	query := `
		SELECT pm.id, pm.product_id, pm.merchant_id, m.name, m.credit_tag,
		       pm.price, pm.shipping_cost, pm.stock_count
		FROM product_merchants pm
		JOIN merchants m ON m.id = pm.merchant_id
		WHERE pm.product_id = $1
		ORDER BY pm.price ASC
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product offers: %w", err)
	}
	defer rows.Close()

	var offers []entity.ProductOffer
	for rows.Next() {
		var offer entity.ProductOffer
		if err := rows.Scan(
			&offer.ID,
			&offer.ProductID,
			&offer.MerchantID,
			&offer.MerchantName,
			&offer.CreditTag,
			&offer.Price,
			&offer.ShippingCost,
			&offer.StockCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product offer: %w", err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product offers: %w", err)
	}

	return offers, nil
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	var products []entity.Product
	for rows.Next() {
		var product entity.Product
		if err := rows.Scan(
			&product.ID,
			&product.CategoryID,
			&product.Name,
			&product.Description,
			&product.ImageURL,
			&product.Rating,
			&product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
