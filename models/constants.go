package models

// Activity statuses
const (
	ActivityStatusOpen     = "open"
	ActivityStatusClosed   = "closed"
	ActivityStatusCanceled = "canceled"
)

// Match request statuses
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

// Participant roles
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Match response actions
const (
	MatchActionAccept = "accept"
	MatchActionReject = "reject"
)

// Gender options accepted at signup
const (
	GenderMale        = "masculino"
	GenderFemale      = "feminino"
	GenderOther       = "outro"
	GenderUndisclosed = "nao_informar"
)

// IsGender reports whether g is one of the accepted gender options.
func IsGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUndisclosed:
		return true
	}
	return false
}
