package audit

import "fmt"

// AuthzEvent represents a permission check decision
type AuthzEvent struct {
	UserID   uint
	OrgID    uint
	ClientIP string
	Action   string
	Resource string
	Allowed  bool
}

func (e AuthzEvent) MessageID() string {
	return "authz"
}

func (e AuthzEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("user %d checked %s on %s: allowed", e.UserID, e.Action, e.Resource)
	}
	return fmt.Sprintf("user %d checked %s on %s: denied", e.UserID, e.Action, e.Resource)
}

func (e AuthzEvent) Severity() Severity {
	return SeverityInfo
}

func (e AuthzEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthzEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": fmt.Sprintf("%d", e.UserID),
		},
		SDIDOrg: {
			"id": fmt.Sprintf("%d", e.OrgID),
		},
		SDIDSubject: {
			"resource":   e.Resource,
			"permission": e.Action,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "check",
			"result":    result,
		},
	}
}
