package audit

import "fmt"

// RoleCustomizationEvent represents a role customization change.
// Operation is one of customize, reset.
type RoleCustomizationEvent struct {
	ActorID      uint
	OrgID        uint
	RoleSlug     string
	Operation    string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e RoleCustomizationEvent) MessageID() string {
	return "role"
}

func (e RoleCustomizationEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("user %d performed %s on role %q in organization %d",
			e.ActorID, e.Operation, e.RoleSlug, e.OrgID)
	}
	msg := fmt.Sprintf("user %d failed %s on role %q", e.ActorID, e.Operation, e.RoleSlug)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RoleCustomizationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RoleCustomizationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RoleCustomizationEvent) StructuredData() map[string]map[string]string {
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
			"role": e.RoleSlug,
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
