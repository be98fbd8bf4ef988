package pgsql

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/models"
)

func TestAuditMapping_OrphanedTransaction(t *testing.T) {
	// An audit whose transaction was deleted comes back with a NULL
	// reference; the record itself must still map cleanly.
	row := models.FinancialAudit{
		AuditID:       "a1",
		TransactionID: sql.NullString{},
		AuditorUserID: "u1",
		ReviewDate:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Outcome:       "approved",
		Note:          sql.NullString{String: "checked against receipts", Valid: true},
	}

	d := toDomainAudit(row)
	assert.Equal(t, "a1", d.AuditID)
	assert.Empty(t, d.TransactionID)
	assert.Equal(t, domain.AuditOutcome("approved"), d.Outcome)
	assert.Equal(t, "checked against receipts", d.Note)
}

func TestAuditMapping_RoundTrip(t *testing.T) {
	d := domain.FinancialAudit{
		AuditID:       "a2",
		TransactionID: "t1",
		AuditorUserID: "u1",
		ReviewDate:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Outcome:       domain.AuditOutcome("rejected"),
		Note:          "missing evidence",
	}

	m := toModelAudit(d)
	assert.True(t, m.TransactionID.Valid)
	assert.Equal(t, "t1", m.TransactionID.String)
	assert.Equal(t, d, toDomainAudit(m))
}

func TestAuditMapping_EmptyTransactionIDStaysNull(t *testing.T) {
	m := toModelAudit(domain.FinancialAudit{AuditID: "a3"})
	assert.False(t, m.TransactionID.Valid)
	assert.False(t, m.Note.Valid)
}
