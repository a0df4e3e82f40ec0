package audit

import "fmt"

// PaymentEvent represents a rent payment state change. Operation is one
// of mark-paid, stk-push, gateway-result.
type PaymentEvent struct {
	ActorID      uint
	OrgID        uint
	PaymentID    uint
	Operation    string
	Status       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e PaymentEvent) MessageID() string {
	return "payment"
}

func (e PaymentEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("payment %d moved to %s via %s", e.PaymentID, e.Status, e.Operation)
	}
	msg := fmt.Sprintf("payment %d failed %s", e.PaymentID, e.Operation)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PaymentEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PaymentEvent) Facility() int {
	return FacilityAuth
}

func (e PaymentEvent) StructuredData() map[string]map[string]string {
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
			"payment": fmt.Sprintf("%d", e.PaymentID),
			"status":  e.Status,
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
