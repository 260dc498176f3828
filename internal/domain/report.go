package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is an abuse report filed by a user.
type Report struct {
	ID         uuid.UUID
	ReporterID uuid.UUID
	TargetType ReportTarget
	TargetID   uuid.UUID
	Reason     string
	Status     ReportStatus
	CreatedAt  time.Time
}
