package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAssociateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE associates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		shop_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		points INTEGER NOT NULL DEFAULT 0,
		referral_count INTEGER NOT NULL DEFAULT 0,
		qr_code_url TEXT NOT NULL,
		joined_date DATETIME NOT NULL,
		kyc_status TEXT NOT NULL DEFAULT 'NOT_STARTED',
		pan_number TEXT,
		aadhaar_number TEXT,
		bank_account TEXT,
		bank_ifsc TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createReferralTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE referrals (
		id TEXT PRIMARY KEY,
		associate_id TEXT NOT NULL,
		client_name TEXT NOT NULL,
		service_interest TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		points_awarded INTEGER NOT NULL DEFAULT 0,
		note TEXT,
		completed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPayoutRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payout_requests (
		id TEXT PRIMARY KEY,
		associate_id TEXT NOT NULL,
		points INTEGER NOT NULL,
		amount TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		processed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		associate_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
