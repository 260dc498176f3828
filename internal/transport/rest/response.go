package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

type textbookResponse struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"ownerId"`
	SchoolID  *uuid.UUID `json:"schoolId,omitempty"`
	Title     string     `json:"title"`
	Author    *string    `json:"author,omitempty"`
	ISBN      *string    `json:"isbn,omitempty"`
	Edition   *string    `json:"edition,omitempty"`
	Condition *string    `json:"condition,omitempty"`
	PhotoURL  *string    `json:"photoUrl,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toTextbookResponse(t *domain.Textbook) textbookResponse {
	resp := textbookResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		SchoolID:  t.SchoolID,
		Title:     t.Title,
		Author:    t.Author,
		ISBN:      t.ISBN,
		Edition:   t.Edition,
		PhotoURL:  t.PhotoURL,
		Status:    t.Status.String(),
		CreatedAt: t.CreatedAt,
	}
	if t.Condition != nil {
		c := t.Condition.String()
		resp.Condition = &c
	}
	return resp
}

func toTextbookResponses(ts []domain.Textbook) []textbookResponse {
	out := make([]textbookResponse, len(ts))
	for i := range ts {
		out[i] = toTextbookResponse(&ts[i])
	}
	return out
}

type locationResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label *string   `json:"label,omitempty"`
}

func toLocationResponse(l *domain.Location) locationResponse {
	return locationResponse{ID: l.ID, Name: l.Name, Label: l.Label}
}

type textbookSummary struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author *string   `json:"author,omitempty"`
	Status string    `json:"status"`
}

type personSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type requestResponse struct {
	ID           uuid.UUID         `json:"id"`
	BorrowerID   uuid.UUID         `json:"borrowerId"`
	LenderID     uuid.UUID         `json:"lenderId"`
	TextbookID   uuid.UUID         `json:"textbookId"`
	LocationID   *uuid.UUID        `json:"locationId,omitempty"`
	Status       string            `json:"status"`
	ProposedTime *time.Time        `json:"proposedTime,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Textbook     *textbookSummary  `json:"textbook,omitempty"`
	Location     *locationResponse `json:"location,omitempty"`
	Borrower     *personSummary    `json:"borrower,omitempty"`
	Lender       *personSummary    `json:"lender,omitempty"`
}

func toRequestResponse(r *domain.Request) requestResponse {
	return requestResponse{
		ID:           r.ID,
		BorrowerID:   r.BorrowerID,
		LenderID:     r.LenderID,
		TextbookID:   r.TextbookID,
		LocationID:   r.LocationID,
		Status:       r.Status.String(),
		ProposedTime: r.ProposedTime,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type messageResponse struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"requestId"`
	FromID    uuid.UUID `json:"fromId"`
	Kind      string    `json:"kind"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		RequestID: m.RequestID,
		FromID:    m.FromID,
		Kind:      m.Kind.String(),
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

type countsResponse struct {
	IncomingPendingRequests  int `json:"incomingPendingRequests"`
	ApprovedRequestsToPickup int `json:"approvedRequestsToPickup"`
	TotalPending             int `json:"totalPending"`
}

func toCountsResponse(c domain.NotificationCounts) countsResponse {
	return countsResponse(c)
}

type pendingActionResponse struct {
	UserID           uuid.UUID `json:"userId"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	IncomingPending  int       `json:"incomingPending"`
	ApprovedOutgoing int       `json:"approvedOutgoing"`
}

type reportResponse struct {
	ID         uuid.UUID `json:"id"`
	ReporterID uuid.UUID `json:"reporterId"`
	TargetType string    `json:"targetType"`
	TargetID   uuid.UUID `json:"targetId"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:         r.ID,
		ReporterID: r.ReporterID,
		TargetType: r.TargetType.String(),
		TargetID:   r.TargetID,
		Reason:     r.Reason,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
	}
}

type profileResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	SchoolID       uuid.UUID `json:"schoolId"`
	GraduationYear *int      `json:"graduationYear,omitempty"`
	Role           string    `json:"role,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:             p.ID,
		Email:          p.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		SchoolID:       p.SchoolID,
		GraduationYear: p.GraduationYear,
		CreatedAt:      p.CreatedAt,
	}
}

type registryStudentResponse struct {
	ID           uuid.UUID `json:"id"`
	SchoolID     uuid.UUID `json:"schoolId"`
	StudentIDNum string    `json:"studentIdNum"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toRegistryStudentResponse(s *domain.RegistryStudent) registryStudentResponse {
	return registryStudentResponse{
		ID:           s.ID,
		SchoolID:     s.SchoolID,
		StudentIDNum: s.StudentIDNum,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
