package postgres

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/internal/postgres"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

var _ datagateway.AuctionDataGatewayWithTx = (*Repository)(nil)

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func wrapQueryError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.WithStack(errs.NotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.WithKind(errors.Wrapf(err, "constraint %s", pgErr.ConstraintName), errs.Conflict)
		case codeForeignKeyViolation:
			return errs.WithKind(errors.Wrapf(err, "constraint %s", pgErr.ConstraintName), errs.NotFound)
		}
	}
	return errors.Wrap(err, "error during query")
}

func expectAffected(rows int64, err error, format string, args ...any) error {
	if err != nil {
		return wrapQueryError(err)
	}
	if rows == 0 {
		return errors.Wrapf(errs.NotFound, format, args...)
	}
	return nil
}
