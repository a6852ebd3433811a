package domain

import "time"

// Snapshot is the full set of an owner's bookkeeping collections, as stored in
// a backup and as returned by the overview endpoint.
type Snapshot struct {
	Settings  Settings        `json:"settings"`
	Units     []Unit          `json:"units"`
	Tenants   []Tenant        `json:"tenants"`
	Utilities []UtilityCharge `json:"utilities"`
	Invoices  []Invoice       `json:"invoices"`
	Payments  []Payment       `json:"payments"`
}

// Backup is a persisted point-in-time snapshot of an owner's data.
type Backup struct {
	BackupID  string    `json:"backupID"` // Primary Key (UUID)
	OwnerID   string    `json:"ownerID"`
	Snapshot  Snapshot  `json:"snapshot"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
