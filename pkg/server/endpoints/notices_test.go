package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

func TestNoticeHTML(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Notices.On("Get", uint(12)).Return(&model.Notice{
		ID:             12,
		OrganizationID: orgID,
		Title:          "Water interruption",
		Body:           "# Notice\n\nWater will be **off** on Saturday.",
	}, nil)
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionViewDashboard), nil)

	rec := doRequest(t, s, "GET", "/notices/12/html", nil, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1>Notice</h1>")
	assert.Contains(t, rec.Body.String(), "<strong>off</strong>")
}

func TestCreateNotice(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageNotices), nil)
	stores.Notices.On("Create", mock.MatchedBy(func(n *model.Notice) bool {
		return n.OrganizationID == orgID && n.Title == "Rent due"
	})).Return(nil)

	rec := doRequest(t, s, "POST", "/notices", CreateNoticeRequest{
		Title: "Rent due",
		Body:  "Rent is due on the 5th.",
	}, 7, &orgID, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	stores.Notices.AssertExpectations(t)
}

func TestTicketStatusTransition(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Tickets.On("Get", uint(8)).Return(&model.MaintenanceTicket{
		ID:             8,
		OrganizationID: orgID,
		Status:         model.TicketOpen,
	}, nil)
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageTickets), nil)
	stores.Tickets.On("SetStatus", uint(8), model.TicketResolved).
		Return(&model.MaintenanceTicket{ID: 8, OrganizationID: orgID, Status: model.TicketResolved}, nil)

	rec := doRequest(t, s, "POST", "/tickets/8/status", TicketStatusRequest{
		Status: model.TicketResolved,
	}, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.MaintenanceTicket
	decodeBody(t, rec, &resp)
	assert.Equal(t, model.TicketResolved, resp.Status)
}

func TestTicketStatusInvalid(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Tickets.On("Get", uint(8)).Return(&model.MaintenanceTicket{
		ID:             8,
		OrganizationID: orgID,
	}, nil)
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(ownerRoles(), nil)
	stores.Tickets.On("SetStatus", uint(8), "bogus").Return(nil, store.ErrValidation)

	rec := doRequest(t, s, "POST", "/tickets/8/status", TicketStatusRequest{
		Status: "bogus",
	}, 7, &orgID, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDashboardSummary(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionViewDashboard), nil)
	stores.Dashboard.On("Summary", orgID).Return(&store.DashboardSummary{
		Properties:       4,
		Units:            40,
		OccupiedUnits:    31,
		Tenants:          31,
		OpenTickets:      2,
		RentCollectedMTD: 465000,
	}, nil)

	rec := doRequest(t, s, "GET", "/dashboard/summary", nil, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp store.DashboardSummary
	decodeBody(t, rec, &resp)
	assert.Equal(t, 40, resp.Units)
	assert.Equal(t, float64(465000), resp.RentCollectedMTD)
}
