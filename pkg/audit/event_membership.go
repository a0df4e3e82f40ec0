package audit

import "fmt"

// MembershipEvent represents a membership lifecycle change. Operation is
// one of create, invite, accept, deactivate, reactivate.
type MembershipEvent struct {
	ActorID      uint
	OrgID        uint
	MembershipID string
	MemberEmail  string
	Operation    string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e MembershipEvent) MessageID() string {
	return "membership"
}

func (e MembershipEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("user %d performed %s on membership %s (%s)",
			e.ActorID, e.Operation, e.MembershipID, e.MemberEmail)
	}
	msg := fmt.Sprintf("user %d failed %s on membership %s", e.ActorID, e.Operation, e.MembershipID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MembershipEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MembershipEvent) Facility() int {
	return FacilityAuthPriv
}

func (e MembershipEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": fmt.Sprintf("%d", e.ActorID),
		},
		SDIDOrg: {
			"id": fmt.Sprintf("%d", e.OrgID),
		},
		SDIDSubject: {
			"membership": e.MembershipID,
			"member":     e.MemberEmail,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
}
