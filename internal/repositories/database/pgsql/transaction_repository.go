package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kiranabook/kirana_backend/internal/apperrors"
	"github.com/kiranabook/kirana_backend/internal/core/domain"
	portsrepo "github.com/kiranabook/kirana_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, amount, currency, txn_type, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.Amount,
		txn.Currency,
		txn.Type,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
        SELECT transaction_id, amount, currency, txn_type, created_at
        FROM transactions
        WHERE transaction_id = $1;
    `
	var txn domain.Transaction
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&txn.TransactionID,
		&txn.Amount,
		&txn.Currency,
		&txn.Type,
		&txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionsInRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	// BETWEEN keeps both bounds inclusive, matching the report window semantics.
	query := `
        SELECT transaction_id, amount, currency, txn_type, created_at
        FROM transactions
        WHERE created_at BETWEEN $1 AND $2
        ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.TransactionID,
			&txn.Amount,
			&txn.Currency,
			&txn.Type,
			&txn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return txns, nil
}
