package sheet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Repository stores the budget document. There is exactly one document per
// installation, persisted verbatim: load on start, store on every change.
type Repository interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Store(ctx context.Context, data []byte) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Load(ctx context.Context) ([]byte, bool, error) {
	query := "SELECT data FROM budget_document WHERE id = 1"
	row := r.db.QueryRowContext(ctx, query)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		err := fmt.Errorf("could not load budget document: %w", err)
		log.Error(err)
		return nil, false, err
	}
	return data, true, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, data []byte) error {
	query := `INSERT INTO budget_document (id, data, updated_at) VALUES (1, ?, datetime('now'))
				ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, data); err != nil {
		err := fmt.Errorf("could not store budget document: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
