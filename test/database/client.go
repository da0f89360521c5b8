// Package database provides a database.Client bound to an isolated test
// schema, for tests that exercise the full client surface rather than the
// raw ent client.
package database

import (
	"testing"

	"github.com/sigmapilot/lens/pkg/database"
	"github.com/sigmapilot/lens/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a shared testcontainer. Cleanup
// (schema drop and connection close) is registered on t.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
