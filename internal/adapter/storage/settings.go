package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niksmo/shop-feed/internal/core/port"
)

var _ port.SettingsProvider = (*SettingsRepository)(nil)

// SettingsRepository reads merchant settings from the shop_settings
// table. A missing setting yields an empty string, not an error.
type SettingsRepository struct {
	sqldb sqldb
}

func NewSettingsRepository(sqldb sqldb) SettingsRepository {
	return SettingsRepository{sqldb}
}

func (r SettingsRepository) Setting(
	ctx context.Context, key, namespace string,
) (string, error) {
	const op = "SettingsRepository.Setting"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT value FROM shop_settings
		WHERE namespace = $1 AND key = $2;`

	var value string
	err := r.sqldb.QueryRowContext(ctx, query, namespace, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return value, nil
}
