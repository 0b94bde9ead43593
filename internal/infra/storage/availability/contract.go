package availability

import (
	"context"
	"database/sql"

	"github.com/palmblack/PalmBlack-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is implemented by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
