// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"logitrack/entities"
)

// Open connects to MySQL when dsn is non-empty (production schema lives
// there), otherwise to the sqlite file at path (dev and tests), and runs the
// migrations either way.
func Open(dsn, path string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	if dsn != "" {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Plant{},
		&entities.User{},
		&entities.TruckTransaction{},
		&entities.TruckTransactionDetail{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if dsn == "" {
		if err := migrateActiveTruckIndex(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	return db
}

// migrateActiveTruckIndex adds a partial unique index over the normalized
// truck number of incomplete headers. The engine already rejects a second
// active header for the same truck inside its unit of work; the index makes
// two racing submissions impossible to both commit. MySQL has no partial
// indexes, so there the engine relies on the transaction alone.
func migrateActiveTruckIndex(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_active_truck_no
ON truck_transactions(truck_no_norm)
WHERE completed = 0 AND truck_no_norm <> ''
`).Error
	})
}

// SeedAdmin creates the default admin account on an empty users table so a
// fresh install can log in. Password is plaintext like the rest of the legacy
// user store.
func SeedAdmin(db *gorm.DB) {
	var n int64
	if err := db.Model(&entities.User{}).Count(&n).Error; err != nil {
		log.Printf("[seed] count users: %v", err)
		return
	}
	if n > 0 {
		return
	}
	admin := entities.User{
		Username:      "admin",
		Password:      "admin",
		ContactNumber: "0000000000",
	}
	admin.SetRoleList([]string{"Admin"})
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[seed] create admin: %v", err)
		return
	}
	log.Printf("[seed] created default admin user; change the password")
}
