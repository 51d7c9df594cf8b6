package pay

import (
	"context"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	models "github.com/glkeru/travelbook/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Журнал проведенных транзакций в Postgres, включается переменной
// PAY_LEDGER_DB. Запись вторична к реестру: ошибка журнала оплату
// не откатывает.
type LedgerDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewLedgerDB(logger *zap.Logger) (db *LedgerDB, err error) {
	// config
	purl := os.Getenv("PAY_LEDGER_DB")
	if purl == "" {
		return nil, fmt.Errorf("env PAY_LEDGER_DB is not set")
	}
	port := os.Getenv("PAY_LEDGER_PORT")
	if port == "" {
		return nil, fmt.Errorf("env PAY_LEDGER_PORT is not set")
	}
	user := os.Getenv("PAY_LEDGER_USER")
	if user == "" {
		return nil, fmt.Errorf("env PAY_LEDGER_USER is not set")
	}
	password := os.Getenv("PAY_LEDGER_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env PAY_LEDGER_PASSWORD is not set")
	}
	database := os.Getenv("PAY_LEDGER_BASE")
	if database == "" {
		return nil, fmt.Errorf("env PAY_LEDGER_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &LedgerDB{pool, logger}, err
}

// Запись проведенной транзакции
func (l *LedgerDB) TnxCreate(ctx context.Context, tnx models.Transaction) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	sql, args, err := sq.Insert("tnx").
		Columns("id", "booking", "member", "amount", "status", "createdat").
		Values(tnx.ID, tnx.Booking, tnx.Member, tnx.Amount, string(tnx.Status), tnx.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		l.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}
	return nil
}

// Транзакции участника за период
func (l *LedgerDB) Tnx(ctx context.Context, member uuid.UUID, from time.Time, to time.Time) (tnxs []models.Transaction, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "booking", "member", "amount", "status", "createdat").
		From("tnx").
		Where(sq.Eq{"member": member}).
		Where(sq.GtOrEq{"createdat": from}).
		Where(sq.LtOrEq{"createdat": to}).
		OrderBy("createdat").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		l.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tnx models.Transaction
		var status string
		err = rows.Scan(&tnx.ID, &tnx.Booking, &tnx.Member, &tnx.Amount, &status, &tnx.CreatedAt)
		if err != nil {
			return nil, err
		}
		tnx.Status = models.TnxStatus(status)
		tnxs = append(tnxs, tnx)
	}
	return tnxs, rows.Err()
}
