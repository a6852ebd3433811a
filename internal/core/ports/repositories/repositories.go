package repositories

// RepositoryProvider bundles every repository implementation so services can
// be wired from a single struct.
type RepositoryProvider struct {
	UserRepo     UserRepository
	SettingsRepo SettingsRepository
	UnitRepo     UnitRepository
	TenantRepo   TenantRepository
	UtilityRepo  UtilityRepository
	InvoiceRepo  InvoiceRepository
	PaymentRepo  PaymentRepository
	BackupRepo   BackupRepository
}
