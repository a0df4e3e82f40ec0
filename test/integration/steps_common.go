package integration

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/endpoints"
	gormstore "github.com/nyumbani/homemanager/pkg/server/store/gorm"
)

const testPassword = "integration-password"

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	suffix       string
	response     *http.Response
	responseBody []byte
	ownerToken   string
	orgSlug      string
	membershipID string
	inviteToken  string
}

// NewStepsContext creates a new steps context. Each scenario gets a fresh
// suffix so fixtures from earlier scenarios don't collide.
func NewStepsContext(tc *TestContext) *StepsContext {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return &StepsContext{
		tc:     tc,
		suffix: hex.EncodeToString(buf),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a homemanager server is running$`, s.aServerIsRunning)
	sc.Step(`^the base role catalog is seeded$`, s.theBaseRoleCatalogIsSeeded)
	sc.Step(`^an organization "([^"]*)" exists with owner "([^"]*)"$`, s.anOrganizationExistsWithOwner)
	sc.Step(`^the organization roles are provisioned$`, s.theOrganizationRolesAreProvisioned)
	sc.Step(`^a user "([^"]*)" exists$`, s.aUserExists)

	// Membership steps
	sc.Step(`^the owner creates a membership for "([^"]*)" with role "([^"]*)"$`, s.ownerCreatesMembership)
	sc.Step(`^the owner sends an invitation to the new membership$`, s.ownerSendsInvitation)
	sc.Step(`^the response should contain an invitation token$`, s.responseShouldContainInvitationToken)
	sc.Step(`^the invitation is accepted$`, s.invitationIsAccepted)
	sc.Step(`^the invitation token "([^"]*)" is accepted$`, s.invitationTokenIsAccepted)
	sc.Step(`^the owner deactivates the new membership$`, s.ownerDeactivatesMembership)
	sc.Step(`^the membership for "([^"]*)" should be active$`, s.membershipShouldBeActive)
	sc.Step(`^the membership for "([^"]*)" should be inactive$`, s.membershipShouldBeInactive)
	sc.Step(`^the membership for "([^"]*)" should no longer be invited$`, s.membershipShouldNotBeInvited)

	// Role customization steps
	sc.Step(`^the owner lists the roles$`, s.ownerListsRoles)
	sc.Step(`^the owner fetches role "([^"]*)"$`, s.ownerFetchesRole)
	sc.Step(`^the owner sets "([^"]*)" to "([^"]*)" on role "([^"]*)"$`, s.ownerSetsPermissionOnRole)
	sc.Step(`^the owner resets role "([^"]*)"$`, s.ownerResetsRole)
	sc.Step(`^role "([^"]*)" should report "([^"]*)" as (true|false)$`, s.roleShouldReportPermission)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
}

// email makes a fixture email unique to this scenario.
func (s *StepsContext) email(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		return email + "+" + s.suffix
	}
	return email[:at] + "+" + s.suffix + email[at:]
}

// Background steps

func (s *StepsContext) aServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) theBaseRoleCatalogIsSeeded() error {
	_, err := gormstore.NewBaseRolesStore(s.tc.DB).Ensure(rbac.DefaultCatalog(), false)
	return err
}

func (s *StepsContext) theOrganizationRolesAreProvisioned() error {
	_, err := gormstore.NewOrgRolesStore(s.tc.DB).ProvisionAll(false)
	return err
}

func (s *StepsContext) aUserExists(email string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}
	return gormstore.NewUsersStore(s.tc.DB).Create(&model.User{
		Email:        s.email(email),
		Username:     s.email(email),
		PasswordHash: string(hash),
	})
}

func (s *StepsContext) anOrganizationExistsWithOwner(name, email string) error {
	if err := s.aUserExists(email); err != nil {
		return err
	}

	// Log in without an organization, create one, then log in again so
	// the token carries the organization claim.
	token, err := s.login(s.email(email))
	if err != nil {
		return err
	}
	s.ownerToken = token

	if err := s.apiRequest("POST", "/organizations", endpoints.CreateOrganizationRequest{
		Name: name + " " + s.suffix,
	}); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected 201 creating organization, got %d: %s", s.response.StatusCode, s.responseBody)
	}

	var org model.Organization
	if err := json.Unmarshal(s.responseBody, &org); err != nil {
		return err
	}
	s.orgSlug = org.Slug

	s.ownerToken, err = s.login(s.email(email))
	return err
}

func (s *StepsContext) login(email string) (string, error) {
	body, err := json.Marshal(endpoints.LoginRequest{Email: email, Password: testPassword})
	if err != nil {
		return "", err
	}

	resp, err := s.tc.HTTPClient.Post(s.tc.ServerURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login for %s failed with status %d", email, resp.StatusCode)
	}

	var loginResp endpoints.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", err
	}
	return loginResp.Token, nil
}

// apiRequest performs an authenticated request and records the response.
func (s *StepsContext) apiRequest(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.ownerToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.ownerToken)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Membership steps

func (s *StepsContext) ownerCreatesMembership(email, roleSlug string) error {
	if err := s.apiRequest("POST", "/memberships", endpoints.CreateMembershipRequest{
		Email:    s.email(email),
		RoleSlug: roleSlug,
	}); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var membership model.OrganizationMembership
		if err := json.Unmarshal(s.responseBody, &membership); err != nil {
			return err
		}
		s.membershipID = membership.ID
	}
	return nil
}

func (s *StepsContext) ownerSendsInvitation() error {
	if s.membershipID == "" {
		return fmt.Errorf("no membership was created")
	}

	if err := s.apiRequest("POST", "/memberships/"+s.membershipID+"/invite", nil); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var invitation endpoints.InvitationResponse
		if err := json.Unmarshal(s.responseBody, &invitation); err != nil {
			return err
		}
		s.inviteToken = invitation.Token
	}
	return nil
}

func (s *StepsContext) responseShouldContainInvitationToken() error {
	if s.inviteToken == "" {
		return fmt.Errorf("no invitation token in response: %s", s.responseBody)
	}
	return nil
}

func (s *StepsContext) invitationIsAccepted() error {
	if s.inviteToken == "" {
		return fmt.Errorf("no invitation token was issued")
	}
	return s.invitationTokenIsAccepted(s.inviteToken)
}

func (s *StepsContext) invitationTokenIsAccepted(token string) error {
	// Acceptance is public, no bearer token
	saved := s.ownerToken
	s.ownerToken = ""
	defer func() { s.ownerToken = saved }()

	return s.apiRequest("POST", "/invitations/"+token+"/accept", nil)
}

func (s *StepsContext) ownerDeactivatesMembership() error {
	if s.membershipID == "" {
		return fmt.Errorf("no membership was created")
	}
	return s.apiRequest("POST", "/memberships/"+s.membershipID+"/deactivate", nil)
}

func (s *StepsContext) membershipShouldBeActive(email string) error {
	return s.checkMembershipActive(email, true)
}

func (s *StepsContext) membershipShouldBeInactive(email string) error {
	return s.checkMembershipActive(email, false)
}

func (s *StepsContext) checkMembershipActive(email string, want bool) error {
	var isActive bool
	err := s.tc.DB.Raw(`
		SELECT m.is_active
		FROM organization_memberships m
		JOIN users u ON u.id = m.user_id
		WHERE u.email = ?
	`, s.email(email)).Scan(&isActive).Error
	if err != nil {
		return err
	}

	if isActive != want {
		return fmt.Errorf("membership for %s: is_active = %v, want %v", s.email(email), isActive, want)
	}
	return nil
}

func (s *StepsContext) membershipShouldNotBeInvited(email string) error {
	var isInvited bool
	err := s.tc.DB.Raw(`
		SELECT m.is_invited
		FROM organization_memberships m
		JOIN users u ON u.id = m.user_id
		WHERE u.email = ?
	`, s.email(email)).Scan(&isInvited).Error
	if err != nil {
		return err
	}

	if isInvited {
		return fmt.Errorf("membership for %s is still flagged invited after acceptance", s.email(email))
	}
	return nil
}

// Role customization steps

func (s *StepsContext) ownerListsRoles() error {
	return s.apiRequest("GET", "/roles", nil)
}

func (s *StepsContext) ownerFetchesRole(slug string) error {
	return s.apiRequest("GET", "/roles/"+slug, nil)
}

func (s *StepsContext) ownerSetsPermissionOnRole(permission, value, slug string) error {
	return s.apiRequest("PUT", "/roles/"+slug+"/customization", map[string]any{
		permission: value == "true",
	})
}

func (s *StepsContext) ownerResetsRole(slug string) error {
	return s.apiRequest("DELETE", "/roles/"+slug+"/customization", nil)
}

func (s *StepsContext) roleShouldReportPermission(slug, permission, value string) error {
	want := value == "true"

	// The last response may hold one role or a list of them.
	var roles []endpoints.RoleResponse
	if err := json.Unmarshal(s.responseBody, &roles); err != nil {
		var role endpoints.RoleResponse
		if err := json.Unmarshal(s.responseBody, &role); err != nil {
			return fmt.Errorf("response is not a role payload: %s", s.responseBody)
		}
		roles = []endpoints.RoleResponse{role}
	}

	for _, role := range roles {
		if role.Slug != slug {
			continue
		}
		got, ok := role.Permissions[permission]
		if !ok {
			return fmt.Errorf("role %s has no permission %q", slug, permission)
		}
		if got != want {
			return fmt.Errorf("role %s: %s = %v, want %v", slug, permission, got, want)
		}
		return nil
	}
	return fmt.Errorf("role %s not found in response: %s", slug, s.responseBody)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}
