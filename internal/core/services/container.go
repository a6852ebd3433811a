package services

import (
	"time"

	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
)

// ContainerConfig carries the non-repository dependencies the services need.
type ContainerConfig struct {
	RateFetcher         RateFetcher
	RateRefreshInterval time.Duration
	AllowedSigninEmail  string
}

// NewContainer wires every service against the repository provider and
// returns the container the handlers are registered with.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg ContainerConfig) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.SettingsRepo, cfg.AllowedSigninEmail)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Rate = NewRateService(repos.SettingsRepo, cfg.RateFetcher, cfg.RateRefreshInterval)
	container.Unit = NewUnitService(repos.UnitRepo)
	container.Tenant = NewTenantService(repos.TenantRepo, repos.UnitRepo)
	container.Utility = NewUtilityService(repos.UtilityRepo, repos.UnitRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.UnitRepo, repos.TenantRepo, repos.UtilityRepo, repos.SettingsRepo)
	container.Overview = NewOverviewService(container.Settings, container.Rate, repos.UnitRepo, repos.TenantRepo, repos.UtilityRepo, repos.InvoiceRepo, repos.PaymentRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.TenantRepo)
	container.Backup = NewBackupService(repos.BackupRepo, container.Overview)

	return container
}
