package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	User     UserSvc
	Settings SettingsSvc
	Rate     RateSvc
	Unit     UnitSvc
	Tenant   TenantSvc
	Utility  UtilitySvc
	Invoice  InvoiceSvc
	Payment  PaymentSvc
	Overview OverviewSvc
	Backup   BackupSvc
}
