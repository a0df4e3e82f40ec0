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

func TestCreateProperty(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageProperties), nil)
	stores.Properties.On("Create", mock.MatchedBy(func(p *model.Property) bool {
		return p.OrganizationID == orgID && p.Name == "Sunrise Court"
	})).Return(nil)

	rec := doRequest(t, s, "POST", "/properties", CreatePropertyRequest{
		Name:    "Sunrise Court",
		Address: "Ngong Road, Nairobi",
	}, 7, &orgID, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	stores.Properties.AssertExpectations(t)
}

func TestGetPropertyCrossTenantReads404(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Properties.On("Get", uint(21)).
		Return(&model.Property{ID: 21, OrganizationID: 5}, nil)

	rec := doRequest(t, s, "GET", "/properties/21", nil, 7, &orgID, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUnitDuplicateNumber(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Properties.On("Get", uint(21)).
		Return(&model.Property{ID: 21, OrganizationID: orgID}, nil)
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(ownerRoles(), nil)
	stores.Properties.On("CreateUnit", mock.Anything).Return(store.ErrConflict)

	rec := doRequest(t, s, "POST", "/properties/21/units", CreateUnitRequest{
		UnitNumber:  "A1",
		MonthlyRent: 15000,
	}, 7, &orgID, false)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnitQRCode(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Properties.On("GetUnit", uint(5)).Return(&model.Unit{
		ID:         5,
		PropertyID: 21,
		UnitNumber: "A1",
		QRCode:     "ab12cd34",
		Property:   &model.Property{ID: 21, OrganizationID: orgID},
	}, nil)
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageProperties), nil)

	rec := doRequest(t, s, "GET", "/units/5/qrcode", nil, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QRCodeResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "ab12cd34", resp.QRCode)
	assert.Equal(t, "/pay/ab12cd34", resp.PaymentURL)
}

func TestAllocateTenant(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	unitID := uint(5)
	stores.Tenants.On("Get", uint(9)).
		Return(&model.Tenant{ID: 9, OrganizationID: orgID}, nil)
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageTenants), nil)
	stores.Tenants.On("Allocate", uint(9), unitID).
		Return(&model.Tenant{ID: 9, OrganizationID: orgID, UnitID: &unitID}, nil)

	rec := doRequest(t, s, "POST", "/tenants/9/allocate", AllocateRequest{UnitID: unitID}, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.Tenant
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.UnitID)
	assert.Equal(t, unitID, *resp.UnitID)
}

func TestAllocateTenantOccupiedUnit(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Tenants.On("Get", uint(9)).
		Return(&model.Tenant{ID: 9, OrganizationID: orgID}, nil)
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(ownerRoles(), nil)
	stores.Tenants.On("Allocate", uint(9), uint(5)).Return(nil, store.ErrValidation)

	rec := doRequest(t, s, "POST", "/tenants/9/allocate", AllocateRequest{UnitID: 5}, 7, &orgID, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
