package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/config"
	"github.com/nyumbani/homemanager/pkg/mpesa"
	"github.com/nyumbani/homemanager/pkg/notify"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
	gormstore "github.com/nyumbani/homemanager/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config
	Guard  *rbac.Guard

	HealthStore        store.HealthStore
	BaseRolesStore     store.BaseRolesStore
	OrgRolesStore      store.OrgRolesStore
	MembershipsStore   store.MembershipsStore
	OrganizationsStore store.OrganizationsStore
	UsersStore         store.UsersStore
	PropertiesStore    store.PropertiesStore
	TenantsStore       store.TenantsStore
	PaymentsStore      store.PaymentsStore
	NoticesStore       store.NoticesStore
	TicketsStore       store.TicketsStore
	MessagesStore      store.MessagesStore
	DashboardStore     store.DashboardStore

	Dispatcher notify.Dispatcher
	Mpesa      *mpesa.Client

	srv *http.Server
}

func NewServer(db *gorm.DB, cfg *config.Config) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	memberships := gormstore.NewMembershipsStore(db)
	payments := gormstore.NewPaymentsStore(db)
	messages := gormstore.NewMessagesStore(db)

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,
		Guard:  rbac.NewGuard(memberships),

		HealthStore:        gormstore.NewHealthStore(db),
		BaseRolesStore:     gormstore.NewBaseRolesStore(db),
		OrgRolesStore:      gormstore.NewOrgRolesStore(db),
		MembershipsStore:   memberships,
		OrganizationsStore: gormstore.NewOrganizationsStore(db),
		UsersStore:         gormstore.NewUsersStore(db),
		PropertiesStore:    gormstore.NewPropertiesStore(db),
		TenantsStore:       gormstore.NewTenantsStore(db),
		PaymentsStore:      payments,
		NoticesStore:       gormstore.NewNoticesStore(db),
		TicketsStore:       gormstore.NewTicketsStore(db),
		MessagesStore:      messages,
		DashboardStore:     gormstore.NewDashboardStore(db),

		Dispatcher: notify.NewLogDispatcher(messages, cfg.SMSSenderID),
		Mpesa:      mpesa.NewClient(payments, cfg.MpesaShortcode, cfg.MpesaSandbox),

		srv: srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
