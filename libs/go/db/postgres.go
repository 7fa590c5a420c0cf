package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DBTX is the subset of pgx shared by pools, connections and transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool opens a connection pool and verifies it with a ping.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	logger.L().Info("Connected to Postgres",
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Int32("min_conns", cfg.MinConns))
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS invoices (
	id            UUID PRIMARY KEY,
	customer_info JSONB NOT NULL,
	sections      JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS invoices_created_at_idx ON invoices (created_at DESC);
`

// InitSchema creates the invoice table if it does not exist.
func InitSchema(ctx context.Context, conn DBTX) error {
	if _, err := conn.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "failed to initialise invoice schema")
	}
	return nil
}

const insertInvoice = `
INSERT INTO invoices (id, customer_info, sections, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

const selectInvoice = `
SELECT id, customer_info, sections, created_at
FROM invoices
WHERE id = $1
`

// PostgresInvoiceStore keeps invoice documents in a JSONB row per invoice.
type PostgresInvoiceStore struct {
	db DBTX
}

// NewPostgresInvoiceStore wraps a pool or connection.
func NewPostgresInvoiceStore(db DBTX) *PostgresInvoiceStore {
	return &PostgresInvoiceStore{db: db}
}

// CreateInvoice inserts doc under a fresh id.
func (s *PostgresInvoiceStore) CreateInvoice(ctx context.Context, doc business.InvoiceDocument) (string, error) {
	customer, err := json.Marshal(doc.CustomerInfo)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode customer info")
	}
	sections, err := json.Marshal(doc.Sections)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode sections")
	}

	var id uuid.UUID
	err = s.db.QueryRow(ctx, insertInvoice, uuid.New(), customer, sections, doc.Date).Scan(&id)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert invoice")
	}
	return id.String(), nil
}

// GetInvoice loads a document by id. Ids that are not UUIDs cannot exist and
// report not found.
func (s *PostgresInvoiceStore) GetInvoice(ctx context.Context, id string) (*business.InvoiceDocument, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}

	var (
		rowID     uuid.UUID
		customer  []byte
		sections  []byte
		createdAt time.Time
	)
	err = s.db.QueryRow(ctx, selectInvoice, parsed).Scan(&rowID, &customer, &sections, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load invoice")
	}

	return decodeInvoiceRow(rowID.String(), customer, sections, createdAt)
}

func decodeInvoiceRow(id string, customer, sections []byte, createdAt time.Time) (*business.InvoiceDocument, error) {
	doc := business.InvoiceDocument{ID: id, Date: createdAt.UTC()}
	if err := json.Unmarshal(customer, &doc.CustomerInfo); err != nil {
		return nil, errors.Wrapf(ErrMalformedInvoice, "customer info: %v", err)
	}
	if err := json.Unmarshal(sections, &doc.Sections); err != nil {
		return nil, errors.Wrapf(ErrMalformedInvoice, "sections: %v", err)
	}
	return &doc, nil
}
