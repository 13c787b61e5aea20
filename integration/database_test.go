//go:build database

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestMoodtrackWithMySQL tests the moodtrack CLI with a MySQL backend.
func TestMoodtrackWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "moodtrack",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/moodtrack?parseTime=true", host, port.Port())
	runBackendFlow(t, []string{
		"MOODTRACK_DB_BACKEND=mysql",
		"MOODTRACK_DB_CONNECT=" + connStr,
	})
}

// TestMoodtrackWithPostgres tests the moodtrack CLI with a PostgreSQL backend.
func TestMoodtrackWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runBackendFlow(t, []string{
		"MOODTRACK_DB_BACKEND=postgresql",
		"MOODTRACK_DB_CONNECT=" + connStr,
	})
}

// runBackendFlow migrates, imports a week, checks the summary, and clears.
func runBackendFlow(t *testing.T, env []string) {
	t.Helper()
	dir := t.TempDir()
	fixture := writeFixture(t, dir)

	_, err := runMoodtrack(t, dir, env, "store", "clear")
	require.NoError(t, err)

	_, err = runMoodtrack(t, dir, env, "store", "migrate")
	require.NoError(t, err)

	_, err = runMoodtrack(t, dir, env, "import", fixture)
	require.NoError(t, err)

	_, err = runMoodtrack(t, dir, env, "add", "--mood", "5", "--energy", "4", "--stress", "1", "--at", "2024-03-06 20:00")
	require.NoError(t, err)

	out, err := runMoodtrack(t, dir, env, "summary", "--end", "2024-03-07", "--output", "json")
	require.NoError(t, err)
	var result schema.SummaryResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotNil(t, result.Summary)
	assert.Equal(t, 4, result.Summary.Count)
	assert.InDelta(t, 3.5, result.Summary.AvgMood, 0.001)
	assert.Equal(t, []string{"great run", "rough start"}, result.TopNotes)

	out, err = runMoodtrack(t, dir, env, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Entries: 4")

	_, err = runMoodtrack(t, dir, env, "store", "clear")
	require.NoError(t, err)
}
