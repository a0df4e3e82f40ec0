package store

// DashboardSummary is the per-organization counters behind the
// dashboard endpoint.
type DashboardSummary struct {
	Properties        int     `json:"properties"`
	Units             int     `json:"units"`
	OccupiedUnits     int     `json:"occupied_units"`
	Tenants           int     `json:"tenants"`
	OpenTickets       int     `json:"open_tickets"`
	RentCollectedMTD  float64 `json:"rent_collected_mtd"`
	RentOutstanding   float64 `json:"rent_outstanding"`
	ActiveMemberships int     `json:"active_memberships"`
}

// DashboardStore aggregates per-organization counters.
type DashboardStore interface {
	Summary(orgID uint) (*DashboardSummary, error)
}
