package domain

import (
	"slices"

	"github.com/google/uuid"
)

// NotificationCounts is the per-user projection of pending actions.
// It is never persisted.
type NotificationCounts struct {
	IncomingPendingRequests  int
	ApprovedRequestsToPickup int
	TotalPending             int
}

// NewNotificationCounts builds counts keeping TotalPending consistent.
func NewNotificationCounts(incoming, approved int) NotificationCounts {
	return NotificationCounts{
		IncomingPendingRequests:  incoming,
		ApprovedRequestsToPickup: approved,
		TotalPending:             incoming + approved,
	}
}

// PendingAction is one row of the admin pending-actions view.
type PendingAction struct {
	UserID           uuid.UUID
	FirstName        string
	LastName         string
	Email            string
	IncomingPending  int
	ApprovedOutgoing int
}

// ChangeTable names the table a change event originated from.
type ChangeTable string

const (
	ChangeTableRequests  ChangeTable = "requests"
	ChangeTableTextbooks ChangeTable = "textbooks"
)

// ChangeEvent is delivered by the change feed whenever a request or a
// textbook row changes. Users lists every user whose counts may have moved.
type ChangeEvent struct {
	Table    ChangeTable
	Op       string
	RowID    uuid.UUID
	Users    []uuid.UUID
	NewState string
}

// Concerns reports whether the event can affect userID's counts.
func (e ChangeEvent) Concerns(userID uuid.UUID) bool {
	return slices.Contains(e.Users, userID)
}
