package endpoints

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

// MockBaseRolesStore implements store.BaseRolesStore
type MockBaseRolesStore struct {
	mock.Mock
}

func (m *MockBaseRolesStore) List() ([]model.BaseRole, error) {
	args := m.Called()
	return args.Get(0).([]model.BaseRole), args.Error(1)
}

func (m *MockBaseRolesStore) GetBySlug(slug string) (*model.BaseRole, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BaseRole), args.Error(1)
}

func (m *MockBaseRolesStore) Ensure(catalog rbac.Catalog, dryRun bool) (*store.SeedResult, error) {
	args := m.Called(catalog, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SeedResult), args.Error(1)
}

// MockOrgRolesStore implements store.OrgRolesStore
type MockOrgRolesStore struct {
	mock.Mock
}

func (m *MockOrgRolesStore) ListByOrg(orgID uint) ([]model.OrganizationRole, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.OrganizationRole), args.Error(1)
}

func (m *MockOrgRolesStore) GetByOrgAndSlug(orgID uint, slug string) (*model.OrganizationRole, error) {
	args := m.Called(orgID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationRole), args.Error(1)
}

func (m *MockOrgRolesStore) GetOrCreate(orgID, baseRoleID uint) (*model.OrganizationRole, error) {
	args := m.Called(orgID, baseRoleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationRole), args.Error(1)
}

func (m *MockOrgRolesStore) RoleState(role *model.OrganizationRole) (rbac.RoleState, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rbac.RoleState), args.Error(1)
}

func (m *MockOrgRolesStore) GetCustomization(orgID, baseRoleID uint) (*model.OrganizationRoleCustomization, error) {
	args := m.Called(orgID, baseRoleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationRoleCustomization), args.Error(1)
}

func (m *MockOrgRolesStore) UpsertCustomization(orgID, baseRoleID uint, overrides rbac.Overrides) (*model.OrganizationRoleCustomization, error) {
	args := m.Called(orgID, baseRoleID, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationRoleCustomization), args.Error(1)
}

func (m *MockOrgRolesStore) DeleteCustomization(orgID, baseRoleID uint) error {
	args := m.Called(orgID, baseRoleID)
	return args.Error(0)
}

func (m *MockOrgRolesStore) ProvisionAll(dryRun bool) (*store.ProvisionResult, error) {
	args := m.Called(dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ProvisionResult), args.Error(1)
}

// MockMembershipsStore implements store.MembershipsStore. It doubles as
// the guard's membership source.
type MockMembershipsStore struct {
	mock.Mock
}

func (m *MockMembershipsStore) Create(orgID, userID, roleID uint, invited bool) (*model.OrganizationMembership, error) {
	args := m.Called(orgID, userID, roleID, invited)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipsStore) Get(id string) (*model.OrganizationMembership, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipsStore) ListByOrg(orgID uint) ([]model.OrganizationMembership, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipsStore) SendInvitation(id string) (*model.OrganizationMembership, string, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.OrganizationMembership), args.String(1), args.Error(2)
}

func (m *MockMembershipsStore) AcceptInvitation(token string) (*model.OrganizationMembership, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipsStore) Deactivate(id string) (*model.OrganizationMembership, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipsStore) Reactivate(id string) (*model.OrganizationMembership, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipsStore) FindActiveByUser(userID, orgID uint) (*model.OrganizationMembership, error) {
	args := m.Called(userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipsStore) ActiveMembershipRoles(ctx context.Context, userID, orgID uint) ([]rbac.MembershipRole, error) {
	args := m.Called(ctx, userID, orgID)
	return args.Get(0).([]rbac.MembershipRole), args.Error(1)
}

// MockOrganizationsStore implements store.OrganizationsStore
type MockOrganizationsStore struct {
	mock.Mock
}

func (m *MockOrganizationsStore) Create(org *model.Organization) error {
	args := m.Called(org)
	return args.Error(0)
}

func (m *MockOrganizationsStore) GetByID(id uint) (*model.Organization, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) GetBySlug(slug string) (*model.Organization, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) List() ([]model.Organization, error) {
	args := m.Called()
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) Update(org *model.Organization) error {
	args := m.Called(org)
	return args.Error(0)
}

// MockUsersStore implements store.UsersStore
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) GetByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) GetByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) BindToOrganization(userID, orgID uint) error {
	args := m.Called(userID, orgID)
	return args.Error(0)
}

// MockPropertiesStore implements store.PropertiesStore
type MockPropertiesStore struct {
	mock.Mock
}

func (m *MockPropertiesStore) Create(property *model.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertiesStore) Get(id uint) (*model.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertiesStore) ListByOrg(orgID uint) ([]model.Property, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.Property), args.Error(1)
}

func (m *MockPropertiesStore) Update(property *model.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertiesStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPropertiesStore) CreateUnit(unit *model.Unit) error {
	args := m.Called(unit)
	return args.Error(0)
}

func (m *MockPropertiesStore) GetUnit(id uint) (*model.Unit, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockPropertiesStore) GetUnitByQRCode(code string) (*model.Unit, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockPropertiesStore) ListUnits(propertyID uint) ([]model.Unit, error) {
	args := m.Called(propertyID)
	return args.Get(0).([]model.Unit), args.Error(1)
}

func (m *MockPropertiesStore) UpdateUnit(unit *model.Unit) error {
	args := m.Called(unit)
	return args.Error(0)
}

// MockTenantsStore implements store.TenantsStore
type MockTenantsStore struct {
	mock.Mock
}

func (m *MockTenantsStore) Create(tenant *model.Tenant) error {
	args := m.Called(tenant)
	return args.Error(0)
}

func (m *MockTenantsStore) Get(id uint) (*model.Tenant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) ListByOrg(orgID uint) ([]model.Tenant, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) Allocate(tenantID, unitID uint) (*model.Tenant, error) {
	args := m.Called(tenantID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) CreateLease(lease *model.Lease) error {
	args := m.Called(lease)
	return args.Error(0)
}

func (m *MockTenantsStore) ListLeases(orgID uint) ([]model.Lease, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.Lease), args.Error(1)
}

// MockPaymentsStore implements store.PaymentsStore
type MockPaymentsStore struct {
	mock.Mock
}

func (m *MockPaymentsStore) Create(payment *model.RentPayment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentsStore) Get(id uint) (*model.RentPayment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RentPayment), args.Error(1)
}

func (m *MockPaymentsStore) ListByOrg(orgID uint) ([]model.RentPayment, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.RentPayment), args.Error(1)
}

func (m *MockPaymentsStore) MarkPaid(id uint, method, transactionID string) (*model.RentPayment, error) {
	args := m.Called(id, method, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RentPayment), args.Error(1)
}

func (m *MockPaymentsStore) CreateMpesa(attempt *model.MpesaPayment) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockPaymentsStore) GetMpesaByCheckoutID(checkoutRequestID string) (*model.MpesaPayment, error) {
	args := m.Called(checkoutRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MpesaPayment), args.Error(1)
}

func (m *MockPaymentsStore) ApplyMpesaResult(result store.MpesaResult) (*model.MpesaPayment, error) {
	args := m.Called(result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MpesaPayment), args.Error(1)
}

// MockNoticesStore implements store.NoticesStore
type MockNoticesStore struct {
	mock.Mock
}

func (m *MockNoticesStore) Create(notice *model.Notice) error {
	args := m.Called(notice)
	return args.Error(0)
}

func (m *MockNoticesStore) Get(id uint) (*model.Notice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notice), args.Error(1)
}

func (m *MockNoticesStore) ListByOrg(orgID uint) ([]model.Notice, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.Notice), args.Error(1)
}

func (m *MockNoticesStore) Update(notice *model.Notice) error {
	args := m.Called(notice)
	return args.Error(0)
}

// MockTicketsStore implements store.TicketsStore
type MockTicketsStore struct {
	mock.Mock
}

func (m *MockTicketsStore) Create(ticket *model.MaintenanceTicket) error {
	args := m.Called(ticket)
	return args.Error(0)
}

func (m *MockTicketsStore) Get(id uint) (*model.MaintenanceTicket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceTicket), args.Error(1)
}

func (m *MockTicketsStore) ListByOrg(orgID uint) ([]model.MaintenanceTicket, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.MaintenanceTicket), args.Error(1)
}

func (m *MockTicketsStore) SetStatus(id uint, status string) (*model.MaintenanceTicket, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceTicket), args.Error(1)
}

// MockMessagesStore implements store.MessagesStore
type MockMessagesStore struct {
	mock.Mock
}

func (m *MockMessagesStore) Record(message *model.SMSMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockMessagesStore) ListByOrg(orgID uint) ([]model.SMSMessage, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.SMSMessage), args.Error(1)
}

// MockDashboardStore implements store.DashboardStore
type MockDashboardStore struct {
	mock.Mock
}

func (m *MockDashboardStore) Summary(orgID uint) (*store.DashboardSummary, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.DashboardSummary), args.Error(1)
}
