package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapQueryError(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		assert.ErrorIs(t, wrapQueryError(pgx.ErrNoRows), errs.NotFound)
	})
	t.Run("unique violation", func(t *testing.T) {
		err := wrapQueryError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "auction_sales_event_id_lot_number_key"})
		assert.ErrorIs(t, err, errs.Conflict)
		assert.Contains(t, err.Error(), "auction_sales_event_id_lot_number_key")
	})
	t.Run("foreign key violation", func(t *testing.T) {
		err := wrapQueryError(&pgconn.PgError{Code: codeForeignKeyViolation})
		assert.ErrorIs(t, err, errs.NotFound)
	})
	t.Run("other", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := wrapQueryError(cause)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, errs.NotFound)
	})
}

func TestExpectAffected(t *testing.T) {
	assert.NoError(t, expectAffected(1, nil, "event %s", "e-1"))
	assert.ErrorIs(t, expectAffected(0, nil, "event %s", "e-1"), errs.NotFound)
	assert.ErrorIs(t, expectAffected(0, &pgconn.PgError{Code: codeUniqueViolation}, "event %s", "e-1"), errs.Conflict)
}

func TestTxWithoutBegin(t *testing.T) {
	repo := NewRepository(nil)
	assert.NoError(t, repo.Commit(context.Background()))
	assert.NoError(t, repo.Rollback(context.Background()))
}

// recordingDB records the SQL it is given. Every row lookup finds nothing.
type recordingDB struct {
	statements []string
}

func (d *recordingDB) Exec(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	d.statements = append(d.statements, sql)
	return pgconn.CommandTag{}, nil
}

func (d *recordingDB) Query(_ context.Context, sql string, _ ...interface{}) (pgx.Rows, error) {
	d.statements = append(d.statements, sql)
	return nil, errors.New("not implemented")
}

func (d *recordingDB) QueryRow(_ context.Context, sql string, _ ...interface{}) pgx.Row {
	d.statements = append(d.statements, sql)
	return noRow{}
}

func (d *recordingDB) Begin(context.Context) (pgx.Tx, error) {
	return &recordingTx{recordingDB: d}, nil
}

func (d *recordingDB) Ping(context.Context) error {
	return nil
}

type noRow struct{}

func (noRow) Scan(...any) error {
	return pgx.ErrNoRows
}

type recordingTx struct {
	pgx.Tx
	*recordingDB
}

func (t *recordingTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return t.recordingDB.Exec(ctx, sql, args...)
}

func (t *recordingTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return t.recordingDB.Query(ctx, sql, args...)
}

func (t *recordingTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return t.recordingDB.QueryRow(ctx, sql, args...)
}

func (t *recordingTx) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("not implemented")
}

func (t *recordingTx) Commit(context.Context) error {
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	return pgx.ErrTxClosed
}

func TestGetEventLocksInsideTransaction(t *testing.T) {
	ctx := context.Background()
	db := &recordingDB{}
	repo := NewRepository(db)

	_, err := repo.GetEvent(ctx, "e-1")
	assert.ErrorIs(t, err, errs.NotFound)
	require.Len(t, db.statements, 1)
	assert.NotContains(t, db.statements[0], "FOR UPDATE")

	tx, err := repo.BeginAuctionTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.GetEvent(ctx, "e-1")
	assert.ErrorIs(t, err, errs.NotFound)
	require.Len(t, db.statements, 2)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(db.statements[1]), "FOR UPDATE"), db.statements[1])
}
