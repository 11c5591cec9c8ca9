package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	taxdash_errors "taxdash/internal"
	"taxdash/internal/db/models/postgres/public/model"
	. "taxdash/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"

	_ "github.com/lib/pq"
)

type TaxProfileRepository interface {
	// Get returns taxdash_errors.ErrNoTaxProfile when the user has none.
	Get(userID uuid.UUID) (*model.TaxProfile, error)
	Upsert(userID uuid.UUID, profile model.TaxProfile) (*model.TaxProfile, error)
}

type taxProfileRepositoryHandler struct {
	DB *sql.DB
}

func NewTaxProfileRepository(db *sql.DB) TaxProfileRepository {
	return taxProfileRepositoryHandler{
		DB: db,
	}
}

func (h taxProfileRepositoryHandler) Get(userID uuid.UUID) (*model.TaxProfile, error) {
	query := TaxProfile.SELECT(TaxProfile.AllColumns).
		WHERE(
			TaxProfile.UserID.EQ(postgres.UUID(userID)),
		)

	profile := &model.TaxProfile{}
	err := query.Query(h.DB, profile)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, taxdash_errors.ErrNoTaxProfile{UserID: userID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tax profile for user %s: %w", userID.String(), err)
	}

	return profile, nil
}

// Upsert keeps at most one profile per user, matching the unique
// constraint on user_id.
func (h taxProfileRepositoryHandler) Upsert(userID uuid.UUID, profile model.TaxProfile) (*model.TaxProfile, error) {
	profile.UserID = userID
	profile.UpdatedAt = time.Now().UTC()

	existing, err := h.Get(userID)
	var noProfile taxdash_errors.ErrNoTaxProfile
	if errors.As(err, &noProfile) {
		profile.TaxProfileID = uuid.New()
		query := TaxProfile.INSERT(TaxProfile.AllColumns).
			MODEL(profile).
			RETURNING(TaxProfile.AllColumns)

		out := &model.TaxProfile{}
		if err := query.Query(h.DB, out); err != nil {
			return nil, fmt.Errorf("failed to insert tax profile for user %s: %w", userID.String(), err)
		}
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	profile.TaxProfileID = existing.TaxProfileID
	query := TaxProfile.UPDATE(TaxProfile.MutableColumns).
		MODEL(profile).
		WHERE(TaxProfile.UserID.EQ(postgres.UUID(userID))).
		RETURNING(TaxProfile.AllColumns)

	out := &model.TaxProfile{}
	if err := query.Query(h.DB, out); err != nil {
		return nil, fmt.Errorf("failed to update tax profile for user %s: %w", userID.String(), err)
	}

	return out, nil
}
