package repository

import (
	"database/sql"
	"fmt"
	"time"

	"taxdash/internal/db/models/postgres/public/model"
	. "taxdash/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"

	_ "github.com/lib/pq"
)

type LotRepository interface {
	Add(lots []model.Lot) ([]model.Lot, error)
	List(userID uuid.UUID) ([]model.Lot, error)
	ListBySymbol(userID uuid.UUID, symbol string) ([]model.Lot, error)
}

type lotRepositoryHandler struct {
	DB *sql.DB
}

func NewLotRepository(db *sql.DB) LotRepository {
	return lotRepositoryHandler{
		DB: db,
	}
}

func (h lotRepositoryHandler) Add(lots []model.Lot) ([]model.Lot, error) {
	if len(lots) == 0 {
		return nil, nil
	}

	insert := make([]model.Lot, len(lots))
	for i, lot := range lots {
		lot.LotID = uuid.New()
		lot.CreatedAt = time.Now().UTC()
		insert[i] = lot
	}

	query := Lot.INSERT(Lot.AllColumns).
		MODELS(insert).
		RETURNING(Lot.AllColumns)

	out := []model.Lot{}
	err := query.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %d lots: %w", len(lots), err)
	}

	return out, nil
}

func (h lotRepositoryHandler) List(userID uuid.UUID) ([]model.Lot, error) {
	query := Lot.SELECT(Lot.AllColumns).
		WHERE(
			Lot.UserID.EQ(postgres.UUID(userID)),
		).
		ORDER_BY(Lot.PurchaseDate.ASC())

	lots := []model.Lot{}
	err := query.Query(h.DB, &lots)
	if err != nil {
		return nil, fmt.Errorf("failed to query lots for user %s: %w", userID.String(), err)
	}

	return lots, nil
}

func (h lotRepositoryHandler) ListBySymbol(userID uuid.UUID, symbol string) ([]model.Lot, error) {
	query := Lot.SELECT(Lot.AllColumns).
		WHERE(
			Lot.UserID.EQ(postgres.UUID(userID)).
				AND(Lot.Symbol.EQ(postgres.String(symbol))),
		).
		ORDER_BY(Lot.PurchaseDate.ASC())

	lots := []model.Lot{}
	err := query.Query(h.DB, &lots)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s lots for user %s: %w", symbol, userID.String(), err)
	}

	return lots, nil
}
