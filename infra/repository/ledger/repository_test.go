package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	domain "github.com/courtside/ledger/pkg/domain/ledger"
	"github.com/courtside/ledger/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func txRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "amount", "type", "category", "status", "created_at", "updated_at",
	})
}

// The reporting query contract: owner scoping, completed-only, chronological
// order. Every financial aggregate depends on these three clauses being in
// the emitted SQL.
func TestListByOwner_ScopesAndOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	ownerID := uuid.New()
	txID := uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE owner_id = \$1 AND status = \$2 ORDER BY created_at ASC`).
		WithArgs(ownerID, string(domain.StatusCompleted)).
		WillReturnRows(txRows().
			AddRow(txID, ownerID, "150.5000", "income", "selling", "completed", created, created))

	txs, err := repo.ListByOwner(context.Background(), ownerID, dto.TransactionFilter{})

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, txID, txs[0].ID)
	assert.Equal(t, ownerID, txs[0].OwnerID)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("150.5")))
	assert.Equal(t, domain.TypeIncome, txs[0].Type)
	require.NotNil(t, txs[0].Category)
	assert.Equal(t, "selling", *txs[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_AppliesOptionalFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	ownerID := uuid.New()
	typ := domain.TypeExpense
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE owner_id = \$1 AND status = \$2 AND type = \$3 AND created_at >= \$4 AND created_at < \$5 ORDER BY created_at ASC`).
		WithArgs(ownerID, string(domain.StatusCompleted), string(typ), from, to).
		WillReturnRows(txRows())

	txs, err := repo.ListByOwner(context.Background(), ownerID, dto.TransactionFilter{
		Type: &typ,
		From: &from,
		To:   &to,
	})

	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_MalformedAmount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	ownerID := uuid.New()
	txID := uuid.New()
	created := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).
		WillReturnRows(txRows().
			AddRow(txID, ownerID, "not-a-number", "income", nil, "completed", created, created))

	txs, err := repo.ListByOwner(context.Background(), ownerID, dto.TransactionFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
	assert.Contains(t, err.Error(), txID.String())
	assert.Nil(t, txs, "a corrupted row must not yield a partial result set")
}

func TestListByOwner_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).
		WillReturnError(errors.New("query error"))

	txs, err := repo.ListByOwner(context.Background(), uuid.New(), dto.TransactionFilter{})

	require.Error(t, err)
	assert.Nil(t, txs)
}

func TestCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	category := "selling"
	create := dto.TransactionCreate{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Amount:   decimal.RequireFromString("42.25"),
		Type:     domain.TypeIncome,
		Category: &category,
		Status:   domain.StatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), create)
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), create)
	assert.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}
	id := uuid.New()
	completed := domain.StatusCompleted

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), id, dto.TransactionUpdate{Status: &completed})
	assert.NoError(t, err)

	// No fields to change means no SQL at all.
	err = repo.UpdateStatus(context.Background(), id, dto.TransactionUpdate{})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
