package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure DashboardStore implements store.DashboardStore
var _ store.DashboardStore = (*DashboardStore)(nil)

// DashboardStore implements store.DashboardStore using GORM
type DashboardStore struct {
	db *gorm.DB
}

// NewDashboardStore creates a new DashboardStore
func NewDashboardStore(db *gorm.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

// Summary aggregates the per-organization counters in one query.
func (s *DashboardStore) Summary(orgID uint) (*store.DashboardSummary, error) {
	var summary store.DashboardSummary
	err := s.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM properties WHERE organization_id = @org) AS properties,
			(SELECT COUNT(*) FROM units u
				JOIN properties p ON p.id = u.property_id
				WHERE p.organization_id = @org) AS units,
			(SELECT COUNT(*) FROM units u
				JOIN properties p ON p.id = u.property_id
				WHERE p.organization_id = @org AND u.is_occupied) AS occupied_units,
			(SELECT COUNT(*) FROM tenants WHERE organization_id = @org) AS tenants,
			(SELECT COUNT(*) FROM maintenance_tickets
				WHERE organization_id = @org AND status IN ('open', 'in_progress')) AS open_tickets,
			(SELECT COALESCE(SUM(amount), 0) FROM rent_payments
				WHERE organization_id = @org AND status = 'completed'
				AND payment_date >= date_trunc('month', now())) AS rent_collected_mtd,
			(SELECT COALESCE(SUM(amount), 0) FROM rent_payments
				WHERE organization_id = @org AND status <> 'completed') AS rent_outstanding,
			(SELECT COUNT(*) FROM organization_memberships
				WHERE organization_id = @org AND is_active) AS active_memberships
	`, map[string]interface{}{"org": orgID}).Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard summary: %w", err)
	}
	return &summary, nil
}
