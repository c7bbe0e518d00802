package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/correction"
)

type correctionTableModel struct {
	ID           string         `db:"id"`
	DivisionID   sql.NullString `db:"division_id"`
	DivisionName sql.NullString `db:"division_name"`
	TeamID       sql.NullString `db:"team_id"`
	TeamName     sql.NullString `db:"team_name"`
	Category     string         `db:"category"`
	ContactName  string         `db:"contact_name"`
	ContactEmail string         `db:"contact_email"`
	ContactRole  sql.NullString `db:"contact_role"`
	Message      string         `db:"message"`
	Status       string         `db:"status"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" qb:"readonly"`
}

func correctionModelFromDomain(item correction.Correction) correctionTableModel {
	createdAt := item.CreatedAt.UTC()
	if item.CreatedAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := item.Status
	if status == "" {
		status = correction.StatusPending
	}

	model := correctionTableModel{
		ID:           item.ID,
		DivisionID:   nullableString(item.DivisionID),
		DivisionName: nullableString(item.DivisionName),
		TeamID:       nullableString(item.TeamID),
		TeamName:     nullableString(item.TeamName),
		Category:     string(item.Category),
		ContactName:  item.ContactName,
		ContactEmail: item.ContactEmail,
		ContactRole:  nullableString(item.ContactRole),
		Message:      item.Message,
		Status:       string(status),
		CreatedAt:    createdAt,
	}
	if item.Notes != nil {
		model.Notes = sql.NullString{String: *item.Notes, Valid: true}
	}
	return model
}

func (m correctionTableModel) toDomain() correction.Correction {
	return correction.Correction{
		ID:           m.ID,
		DivisionID:   m.DivisionID.String,
		DivisionName: m.DivisionName.String,
		TeamID:       m.TeamID.String,
		TeamName:     m.TeamName.String,
		Category:     correction.Category(m.Category),
		ContactName:  m.ContactName,
		ContactEmail: m.ContactEmail,
		ContactRole:  m.ContactRole.String,
		Message:      m.Message,
		Status:       correction.Status(m.Status),
		Notes:        nullStringToPtr(m.Notes),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
