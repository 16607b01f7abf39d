package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"assetregistry/src/core/domain"
	"assetregistry/src/infra/db"
)

// AssetCategoryRepository implements ports.AssetCategoryRepository using pgx.
type AssetCategoryRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewAssetCategoryRepository constructs a category repository backed by Postgres.
func NewAssetCategoryRepository(pg *db.Postgres, log *slog.Logger) *AssetCategoryRepository {
	return &AssetCategoryRepository{pool: pg.Pool, log: log}
}

func (r *AssetCategoryRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *AssetCategoryRepository) Insert(ctx context.Context, c domain.AssetCategory) (*domain.AssetCategory, error) {
	const q = `
		INSERT INTO asset_categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, name, description, created_at, updated_at
	`
	var out domain.AssetCategory
	err := r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Description, c.CreatedAt).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewDuplicateNameError("asset category name already taken")
		}
		return nil, err
	}
	return &out, nil
}

func (r *AssetCategoryRepository) Update(ctx context.Context, c domain.AssetCategory) (*domain.AssetCategory, error) {
	const q = `
		UPDATE asset_categories
		SET name = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, description, created_at, updated_at
	`
	var out domain.AssetCategory
	err := r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Description).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("asset category")
		}
		if isUniqueViolation(err) {
			return nil, domain.NewDuplicateNameError("asset category name already taken")
		}
		return nil, err
	}
	return &out, nil
}

func (r *AssetCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AssetCategory, error) {
	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM asset_categories
		WHERE id = $1
	`
	var out domain.AssetCategory
	if err := r.pool.QueryRow(ctx, q, id).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("asset category")
		}
		return nil, err
	}
	return &out, nil
}

func (r *AssetCategoryRepository) FindByName(ctx context.Context, name string) (*domain.AssetCategory, error) {
	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM asset_categories
		WHERE name = $1
	`
	var out domain.AssetCategory
	if err := r.pool.QueryRow(ctx, q, name).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("asset category")
		}
		return nil, err
	}
	return &out, nil
}

func (r *AssetCategoryRepository) FindPage(ctx context.Context, page, size int) ([]domain.AssetCategory, int64, error) {
	const countQ = `SELECT count(*) FROM asset_categories`
	var total int64
	if err := r.pool.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM asset_categories
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, q, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var categories []domain.AssetCategory
	for rows.Next() {
		var c domain.AssetCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *AssetCategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM asset_categories WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("asset category")
	}
	return nil
}

func (r *AssetCategoryRepository) DeleteAll(ctx context.Context) (int64, error) {
	const q = `DELETE FROM asset_categories`
	res, err := r.pool.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
