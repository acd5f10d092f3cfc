package postgres

import (
	"context"
	"os"
	"testing"

	"pcbuild/db"
	"pcbuild/db/storetest"
)

// Requires a reachable database; set PCBUILD_TEST_DATABASE_URL to run.
func TestStore(t *testing.T) {
	url := os.Getenv("PCBUILD_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("PCBUILD_TEST_DATABASE_URL not set")
	}
	storetest.Run(t, func(t *testing.T) db.Store {
		ctx := context.Background()
		s, err := Open(ctx, url)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if _, err := s.pool.Exec(ctx, `TRUNCATE inventory, templates`); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return s
	})
}
