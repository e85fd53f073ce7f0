package testutil

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/tutor-catalog/backend/migrations"
)

// Main brings the test database schema up to date once for the whole test
// binary, then runs m and exits. Without TEST_DATABASE_URL the integration
// tests skip themselves and only the unit tests run.
//
// Call it from a package's TestMain.
func Main(m *testing.M) {
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		os.Exit(m.Run())
	}

	db := MustOpenSQLDB(dsn)
	applied, err := migrations.Up(context.Background(), db)
	db.Close()
	if err != nil {
		log.Fatalf("testutil.Main: run migrations: %v", err)
	}
	log.Printf("testutil.Main: applied %d migration(s)", applied)

	os.Exit(m.Run())
}
