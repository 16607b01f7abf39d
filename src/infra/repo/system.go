package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"assetregistry/src/core/domain"
	"assetregistry/src/infra/db"
)

// SystemRepository implements ports.SystemRepository using pgx. The scalar
// columns (id, name, description, timestamps) are plain columns; the nested
// structures live in a JSONB document column.
type SystemRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewSystemRepository constructs a system repository backed by Postgres.
func NewSystemRepository(pg *db.Postgres, log *slog.Logger) *SystemRepository {
	return &SystemRepository{pool: pg.Pool, log: log}
}

func (r *SystemRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// systemDoc is the JSONB document holding a system's nested structures.
type systemDoc struct {
	Location              *domain.Location     `json:"location,omitempty"`
	Organization          string               `json:"organization,omitempty"`
	Attributes            []domain.KvAttribute `json:"attributes,omitempty"`
	AdditionalInformation []domain.Value       `json:"additional_information,omitempty"`
}

func encodeDoc(s domain.System) ([]byte, error) {
	doc := systemDoc{
		Location:              s.Location,
		Organization:          s.Organization,
		Attributes:            s.Attributes,
		AdditionalInformation: s.AdditionalInformation,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode system document: %w", err)
	}
	return raw, nil
}

func decodeDoc(raw []byte, s *domain.System) error {
	var doc systemDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode system document: %w", err)
	}
	s.Location = doc.Location
	s.Organization = doc.Organization
	s.Attributes = doc.Attributes
	s.AdditionalInformation = doc.AdditionalInformation
	return nil
}

func (r *SystemRepository) Insert(ctx context.Context, s domain.System) (*domain.System, error) {
	raw, err := encodeDoc(s)
	if err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO systems (id, name, description, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, name, description, doc, created_at, updated_at
	`
	out, err := scanSystem(r.pool.QueryRow(ctx, q, s.ID, s.Name, s.Description, raw, s.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewDuplicateNameError("system name already taken")
		}
		return nil, err
	}
	return out, nil
}

func (r *SystemRepository) Update(ctx context.Context, s domain.System) (*domain.System, error) {
	raw, err := encodeDoc(s)
	if err != nil {
		return nil, err
	}
	const q = `
		UPDATE systems
		SET name = $2, description = $3, doc = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, name, description, doc, created_at, updated_at
	`
	out, err := scanSystem(r.pool.QueryRow(ctx, q, s.ID, s.Name, s.Description, raw))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("system")
		}
		if isUniqueViolation(err) {
			return nil, domain.NewDuplicateNameError("system name already taken")
		}
		return nil, err
	}
	return out, nil
}

func (r *SystemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	const q = `
		SELECT id, name, description, doc, created_at, updated_at
		FROM systems
		WHERE id = $1
	`
	out, err := scanSystem(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("system")
		}
		return nil, err
	}
	return out, nil
}

func (r *SystemRepository) FindByName(ctx context.Context, name string) (*domain.System, error) {
	const q = `
		SELECT id, name, description, doc, created_at, updated_at
		FROM systems
		WHERE name = $1
	`
	out, err := scanSystem(r.pool.QueryRow(ctx, q, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("system")
		}
		return nil, err
	}
	return out, nil
}

func (r *SystemRepository) FindPage(ctx context.Context, page, size int) ([]domain.System, int64, error) {
	const countQ = `SELECT count(*) FROM systems`
	var total int64
	if err := r.pool.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = `
		SELECT id, name, description, doc, created_at, updated_at
		FROM systems
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, q, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var systems []domain.System
	for rows.Next() {
		s, err := scanSystem(rows)
		if err != nil {
			return nil, 0, err
		}
		systems = append(systems, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return systems, total, nil
}

func (r *SystemRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM systems WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("system")
	}
	return nil
}

func (r *SystemRepository) DeleteAll(ctx context.Context) (int64, error) {
	const q = `DELETE FROM systems`
	res, err := r.pool.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func scanSystem(row pgx.Row) (*domain.System, error) {
	var s domain.System
	var raw []byte
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := decodeDoc(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
