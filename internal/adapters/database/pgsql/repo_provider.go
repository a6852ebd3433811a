package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs every pgx-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(pool),
		SettingsRepo: newPgxSettingsRepository(pool),
		UnitRepo:     newPgxUnitRepository(pool),
		TenantRepo:   newPgxTenantRepository(pool),
		UtilityRepo:  newPgxUtilityRepository(pool),
		InvoiceRepo:  newPgxInvoiceRepository(pool),
		PaymentRepo:  newPgxPaymentRepository(pool),
		BackupRepo:   newPgxBackupRepository(pool),
	}
}
