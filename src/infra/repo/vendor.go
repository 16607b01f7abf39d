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

// VendorRepository implements ports.VendorRepository using pgx.
type VendorRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewVendorRepository constructs a vendor repository backed by Postgres.
func NewVendorRepository(pg *db.Postgres, log *slog.Logger) *VendorRepository {
	return &VendorRepository{pool: pg.Pool, log: log}
}

func (r *VendorRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *VendorRepository) Insert(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	const q = `
		INSERT INTO vendors (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, name, description, created_at, updated_at
	`
	var out domain.Vendor
	err := r.pool.QueryRow(ctx, q, v.ID, v.Name, v.Description, v.CreatedAt).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewDuplicateNameError("vendor name already taken")
		}
		return nil, err
	}
	return &out, nil
}

func (r *VendorRepository) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	const q = `
		UPDATE vendors
		SET name = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, description, created_at, updated_at
	`
	var out domain.Vendor
	err := r.pool.QueryRow(ctx, q, v.ID, v.Name, v.Description).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("vendor")
		}
		if isUniqueViolation(err) {
			return nil, domain.NewDuplicateNameError("vendor name already taken")
		}
		return nil, err
	}
	return &out, nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM vendors
		WHERE id = $1
	`
	var out domain.Vendor
	if err := r.pool.QueryRow(ctx, q, id).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("vendor")
		}
		return nil, err
	}
	return &out, nil
}

func (r *VendorRepository) FindByName(ctx context.Context, name string) (*domain.Vendor, error) {
	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM vendors
		WHERE name = $1
	`
	var out domain.Vendor
	if err := r.pool.QueryRow(ctx, q, name).
		Scan(&out.ID, &out.Name, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("vendor")
		}
		return nil, err
	}
	return &out, nil
}

func (r *VendorRepository) FindPage(ctx context.Context, page, size int) ([]domain.Vendor, int64, error) {
	const countQ = `SELECT count(*) FROM vendors`
	var total int64
	if err := r.pool.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM vendors
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, q, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		var v domain.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, err
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return vendors, total, nil
}

func (r *VendorRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM vendors WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("vendor")
	}
	return nil
}

func (r *VendorRepository) DeleteAll(ctx context.Context) (int64, error) {
	const q = `DELETE FROM vendors`
	res, err := r.pool.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
