package domain

// QagStatus represents the moderation lifecycle state of a QaG.
type QagStatus string

const (
	QagStatusOpen                QagStatus = "OPEN"
	QagStatusModeratedAccepted   QagStatus = "MODERATED_ACCEPTED"
	QagStatusModeratedRejected   QagStatus = "MODERATED_REJECTED"
	QagStatusSelectedForResponse QagStatus = "SELECTED_FOR_RESPONSE"
	QagStatusArchived            QagStatus = "ARCHIVED"
)

func (s QagStatus) String() string { return string(s) }

func (s QagStatus) IsValid() bool {
	switch s {
	case QagStatusOpen, QagStatusModeratedAccepted, QagStatusModeratedRejected,
		QagStatusSelectedForResponse, QagStatusArchived:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition out of the status exists.
func (s QagStatus) IsTerminal() bool {
	return s == QagStatusArchived
}

// CanTransitionTo reports whether the status graph permits moving to next.
//
// OPEN                  -> MODERATED_ACCEPTED | MODERATED_REJECTED | SELECTED_FOR_RESPONSE | ARCHIVED
// MODERATED_ACCEPTED    -> SELECTED_FOR_RESPONSE | ARCHIVED
// MODERATED_REJECTED    -> ARCHIVED
// SELECTED_FOR_RESPONSE -> SELECTED_FOR_RESPONSE (idempotent re-selection) | ARCHIVED
// ARCHIVED              -> (terminal)
func (s QagStatus) CanTransitionTo(next QagStatus) bool {
	if s == QagStatusArchived {
		return false
	}
	switch next {
	case QagStatusArchived:
		return true
	case QagStatusModeratedAccepted, QagStatusModeratedRejected:
		return s == QagStatusOpen
	case QagStatusSelectedForResponse:
		return s == QagStatusOpen || s == QagStatusModeratedAccepted || s == QagStatusSelectedForResponse
	}
	return false
}

// AcceptsSupport reports whether the status alone allows a new support.
// The response-record check is separate and cross-cutting.
func (s QagStatus) AcceptsSupport() bool {
	return s == QagStatusOpen || s == QagStatusModeratedAccepted
}

// ResponseKind discriminates the official response variants.
type ResponseKind string

const (
	ResponseKindText  ResponseKind = "TEXT"
	ResponseKindVideo ResponseKind = "VIDEO"
)

func (k ResponseKind) String() string { return string(k) }

func (k ResponseKind) IsValid() bool {
	switch k {
	case ResponseKindText, ResponseKindVideo:
		return true
	}
	return false
}

// SupportResult is the discriminated outcome of a support insertion.
type SupportResult string

const (
	SupportInserted   SupportResult = "INSERTED"
	SupportDuplicate  SupportResult = "DUPLICATE"
	SupportIneligible SupportResult = "INELIGIBLE"
)

func (r SupportResult) String() string { return string(r) }
