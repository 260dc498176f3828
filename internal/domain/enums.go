package domain

// TextbookStatus is the availability of a textbook in the catalog.
type TextbookStatus string

const (
	TextbookStatusAvailable TextbookStatus = "available"
	TextbookStatusReserved  TextbookStatus = "reserved"
	TextbookStatusLent      TextbookStatus = "lent"
)

func (s TextbookStatus) String() string { return string(s) }

func (s TextbookStatus) IsValid() bool {
	switch s {
	case TextbookStatusAvailable, TextbookStatusReserved, TextbookStatusLent:
		return true
	}
	return false
}

// TextbookCondition is the physical condition declared by the owner.
type TextbookCondition string

const (
	ConditionNew     TextbookCondition = "new"
	ConditionLikeNew TextbookCondition = "like-new"
	ConditionGood    TextbookCondition = "good"
	ConditionFair    TextbookCondition = "fair"
	ConditionPoor    TextbookCondition = "poor"
)

func (c TextbookCondition) String() string { return string(c) }

func (c TextbookCondition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// RequestStatus is the lifecycle state of a borrow request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusReturned  RequestStatus = "returned"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected,
		RequestStatusCompleted, RequestStatusReturned:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusRejected || s == RequestStatusReturned
}

// CanTransitionTo reports whether next is a legal successor of s.
//
//	pending   -> approved | rejected
//	approved  -> completed
//	completed -> returned
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusApproved || next == RequestStatusRejected
	case RequestStatusApproved:
		return next == RequestStatusCompleted
	case RequestStatusCompleted:
		return next == RequestStatusReturned
	case RequestStatusRejected, RequestStatusReturned:
		return false
	}
	return false
}

// MessageKind separates chat written by users from notices the system posts.
type MessageKind string

const (
	MessageKindUser   MessageKind = "user"
	MessageKindSystem MessageKind = "system"
)

func (k MessageKind) String() string { return string(k) }

func (k MessageKind) IsValid() bool {
	return k == MessageKindUser || k == MessageKindSystem
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ReportStatus is the moderation state of an abuse report.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

// ReportTarget is the kind of entity a report points at.
type ReportTarget string

const (
	ReportTargetTextbook ReportTarget = "textbook"
	ReportTargetUser     ReportTarget = "user"
	ReportTargetMessage  ReportTarget = "message"
)

func (t ReportTarget) String() string { return string(t) }

func (t ReportTarget) IsValid() bool {
	switch t {
	case ReportTargetTextbook, ReportTargetUser, ReportTargetMessage:
		return true
	}
	return false
}
