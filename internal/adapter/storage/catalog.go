package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/niksmo/shop-feed/internal/core/domain"
	"github.com/niksmo/shop-feed/internal/core/port"
)

var _ port.CatalogService = (*CatalogRepository)(nil)

// CatalogRepository reads the product catalog page by page, each
// product joined with its variants in discovery order.
type CatalogRepository struct {
	sqldb sqldb
}

func NewCatalogRepository(sqldb sqldb) CatalogRepository {
	return CatalogRepository{sqldb}
}

func (r CatalogRepository) ListProducts(
	ctx context.Context, page, size int,
) ([]domain.Product, error) {
	const op = "CatalogRepository.ListProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, label, description, url,
			google_category, featured_img, brands, categories
		FROM products
		ORDER BY id ASC
		LIMIT $1 OFFSET $2;`

	rows, err := r.sqldb.QueryContext(ctx, query, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query products: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var ps []domain.Product
	for rows.Next() {
		var p domain.Product
		var brandsS, categoriesS string
		err := rows.Scan(
			&p.ID, &p.Label, &p.Description, &p.URL,
			&p.GoogleCategory, &p.FeaturedImg, &brandsS, &categoriesS,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan product: %w", op, err)
		}

		if err := json.Unmarshal([]byte(brandsS), &p.Brands); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal([]byte(categoriesS), &p.Categories); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachVariants(ctx, ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r CatalogRepository) attachVariants(
	ctx context.Context, ps []domain.Product,
) error {
	const op = "CatalogRepository.attachVariants"
	log := slog.With("op", op)

	if len(ps) == 0 {
		return nil
	}

	query := `
		SELECT id, product_id, sku, label, stock_status,
			featured_img, price_inc_tax, price_ex_tax, price_tax
		FROM variants
		WHERE product_id = $1
		ORDER BY id ASC;`

	stmt, err := r.sqldb.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for i := range ps {
		vs, err := r.queryVariants(ctx, stmt, ps[i].ID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		ps[i].Variants = vs
	}
	return nil
}

func (r CatalogRepository) queryVariants(
	ctx context.Context, stmt *sql.Stmt, productID int64,
) (vs []domain.Variant, err error) {
	rows, err := stmt.QueryContext(ctx, productID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cErr := rows.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()

	for rows.Next() {
		var v domain.Variant
		err := rows.Scan(
			&v.ID, &v.ProductID, &v.SKU, &v.Label, &v.StockStatus,
			&v.FeaturedImg, &v.Price.IncTax, &v.Price.ExTax, &v.Price.Tax,
		)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, rows.Err()
}
