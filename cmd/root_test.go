package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/wss-csv-agent/internal/config"
)

func newInventoryServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		data, _ := json.Marshal(map[string]any{
			"organization":    "Acme",
			"createdProjects": []string{},
			"updatedProjects": []string{"P1", "P2"},
		})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"envelopeVersion": "2.1.0",
			"status":          1,
			"message":         "ok",
			"data":            string(data),
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootUpdatesProject(t *testing.T) {
	var calls atomic.Int32
	server := newInventoryServer(t, &calls)
	dir := t.TempDir()
	props := writeFile(t, dir, "wss.properties", fmt.Sprintf("apiKey=k\nprojectToken=p\nwssUrl=%s\n", server.URL))
	input := writeFile(t, dir, "deps.csv", "g1,a1,1.0\n,a2,2.0\ng3,a3\n")

	out, err := execute("--config", props, input)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, `[INFO] Invalid dependency - missing groupId
[INFO] Invalid entry in line 3, skipping
[INFO] Updating White Source
[INFO] White Source update results:
[INFO] White Source organization: Acme
[INFO] No new projects found
[INFO] 2 existing project(s) were updated:
[INFO] P1
[INFO] P2
`, out)
}

func TestRootMissingAPIKeyStopsBeforeServiceCall(t *testing.T) {
	var calls atomic.Int32
	server := newInventoryServer(t, &calls)
	dir := t.TempDir()
	props := writeFile(t, dir, "wss.properties", fmt.Sprintf("projectToken=p\nwssUrl=%s\n", server.URL))
	input := writeFile(t, dir, "deps.csv", "g,a,1\n")

	_, err := execute("--config", props, input)

	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	assert.Zero(t, calls.Load())
}

func TestRootMissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "deps.csv", "g,a,1\n")

	_, err := execute("--config", filepath.Join(dir, "absent.properties"), input)

	assert.ErrorIs(t, err, config.ErrConfigRead)
}

func TestRootMissingInputFileExitsCleanly(t *testing.T) {
	var calls atomic.Int32
	server := newInventoryServer(t, &calls)
	dir := t.TempDir()
	props := writeFile(t, dir, "wss.properties", fmt.Sprintf("apiKey=k\nprojectToken=p\nwssUrl=%s\n", server.URL))
	input := filepath.Join(dir, "absent.csv")

	out, err := execute("--config", props, input)

	require.NoError(t, err)
	assert.Equal(t, "[INFO] File "+input+" not found!\n", out)
	assert.Zero(t, calls.Load())
}

func TestRootDryRun(t *testing.T) {
	var calls atomic.Int32
	server := newInventoryServer(t, &calls)
	dir := t.TempDir()
	props := writeFile(t, dir, "wss.properties", fmt.Sprintf("apiKey=k\nprojectToken=p\nwssUrl=%s\n", server.URL))
	input := writeFile(t, dir, "deps.csv", "g1,a1,1.0\n")

	out, err := execute("--config", props, "--dry-run", input)

	require.NoError(t, err)
	assert.Zero(t, calls.Load())
	assert.Contains(t, out, "projectToken: p")
	assert.Contains(t, out, "groupId: g1")
}

func TestRootRequiresOneArgument(t *testing.T) {
	_, err := execute()
	assert.Error(t, err)

	_, err = execute("a.csv", "b.csv")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)

	assert.Contains(t, out, "WhiteSource CSV Agent")
	assert.Contains(t, out, "Version:       "+Version)
	assert.Contains(t, out, "Agent:         csv-plugin/1.0")
}
