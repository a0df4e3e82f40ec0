package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := AuthenticateEvent{
		Email:    "owner@acme.example",
		ClientIP: "192.168.1.1",
		Success:  true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "homemanager") {
		t.Error("Expected app name 'homemanager' in output")
	}
	if !strings.Contains(output, "authn") {
		t.Error("Expected message ID 'authn' in output")
	}
	if !strings.Contains(output, "owner@acme.example") {
		t.Error("Expected user email in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "successfully authenticated") {
		t.Error("Expected success message in output")
	}
}

func TestAuthenticateEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     AuthenticateEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "successful authentication",
			event: AuthenticateEvent{
				Email:    "owner@acme.example",
				ClientIP: "10.0.0.1",
				Success:  true,
			},
			wantMsg:   "successfully authenticated",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "authn",
		},
		{
			name: "failed authentication",
			event: AuthenticateEvent{
				Email:        "owner@acme.example",
				ClientIP:     "10.0.0.1",
				Success:      false,
				ErrorMessage: "invalid credentials",
			},
			wantMsg:   "failed to authenticate",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "authn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), tt.wantFac)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestAuthzEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   AuthzEvent
		wantMsg string
	}{
		{
			name: "allowed",
			event: AuthzEvent{
				UserID:   7,
				OrgID:    3,
				ClientIP: "10.0.0.1",
				Action:   "manage_properties",
				Resource: "organization:3",
				Allowed:  true,
			},
			wantMsg: "allowed",
		},
		{
			name: "denied",
			event: AuthzEvent{
				UserID:   9,
				OrgID:    3,
				ClientIP: "10.0.0.1",
				Action:   "manage_billing",
				Resource: "organization:3",
				Allowed:  false,
			},
			wantMsg: "denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "authz" {
				t.Errorf("MessageID() = %v, want 'authz'", tt.event.MessageID())
			}
		})
	}
}

func TestMembershipEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   MembershipEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "invite sent",
			event: MembershipEvent{
				ActorID:      1,
				OrgID:        3,
				MembershipID: "f1c7f2a0-2f5a-4b39-9f6e-0a3d4f1e2b3c",
				MemberEmail:  "caretaker@acme.example",
				Operation:    "invite",
				Success:      true,
			},
			wantMsg: "performed invite",
			wantSev: SeverityInfo,
		},
		{
			name: "deactivate failed",
			event: MembershipEvent{
				ActorID:      1,
				OrgID:        3,
				MembershipID: "f1c7f2a0-2f5a-4b39-9f6e-0a3d4f1e2b3c",
				Operation:    "deactivate",
				Success:      false,
				ErrorMessage: "not found",
			},
			wantMsg: "failed deactivate",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != "membership" {
				t.Errorf("MessageID() = %v, want 'membership'", tt.event.MessageID())
			}
		})
	}
}

func TestRoleCustomizationEvent(t *testing.T) {
	event := RoleCustomizationEvent{
		ActorID:   1,
		OrgID:     3,
		RoleSlug:  "manager",
		Operation: "customize",
		Success:   true,
	}

	if event.MessageID() != "role" {
		t.Errorf("MessageID() = %v, want 'role'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "customize") {
		t.Errorf("Message() = %q, want to contain 'customize'", event.Message())
	}
	if !strings.Contains(event.Message(), `"manager"`) {
		t.Errorf("Message() = %q, want to contain role slug", event.Message())
	}
	if event.Severity() != SeverityInfo {
		t.Errorf("Severity() = %v, want SeverityInfo", event.Severity())
	}
}

func TestPaymentEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   PaymentEvent
		wantMsg string
	}{
		{
			name: "marked paid",
			event: PaymentEvent{
				ActorID:   1,
				OrgID:     3,
				PaymentID: 42,
				Operation: "mark-paid",
				Status:    "completed",
				Success:   true,
			},
			wantMsg: "moved to completed",
		},
		{
			name: "gateway failure",
			event: PaymentEvent{
				ActorID:      0,
				OrgID:        3,
				PaymentID:    42,
				Operation:    "gateway-result",
				Success:      false,
				ErrorMessage: "request cancelled by user",
			},
			wantMsg: "failed gateway-result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "payment" {
				t.Errorf("MessageID() = %v, want 'payment'", tt.event.MessageID())
			}
		})
	}
}

func TestStructuredDataEscaping(t *testing.T) {
	escaped := escapeSDValue(`va"lue]`)
	if escaped != `"va\"lue\]"` {
		t.Errorf("escapeSDValue() = %q", escaped)
	}
}
