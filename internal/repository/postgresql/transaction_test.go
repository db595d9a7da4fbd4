package postgresql

import (
	"context"
	"testing"

	"github.com/atlasaero/hr-time-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerier(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}

	// A context from WithTransaction routes to the open transaction
	txCtx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))
	if _, ok := GetQuerier(txCtx, db).(stubTx); !ok {
		t.Error("GetQuerier with transaction context did not return the transaction")
	}

	// A plain context routes to the pool
	if _, ok := GetQuerier(context.Background(), db).(stubTx); ok {
		t.Error("GetQuerier without transaction context returned a transaction")
	}
}
