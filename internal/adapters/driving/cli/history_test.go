package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_NoService(t *testing.T) {
	SetServices(Services{})

	_, _, err := executeCommand(t, "", "history", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand(t, "", "history")

	require.NoError(t, err)
	assert.Contains(t, out, "No recorded runs.")
}

func TestHistoryCmd_Lifecycle(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand(t, "", "align", "--format", "csv", "--save", testVolumes, testIndex)
	require.NoError(t, err)

	runs, err := env.runs.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	id := runs[0].ID

	out, _, err := executeCommand(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "22 of 52 resolved, aliases thalamic-nuclei-2024.1")

	out, _, err = executeCommand(t, "", "history", "show", "--format", "csv", id)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "roi_name,volume,index_id,status,note\n"), "csv output has no banner")
	assert.Contains(t, out, "Left-L-Sg,28.052934,8111,matched_alias,Matched to Left-LSg")

	out, _, err = executeCommand(t, "", "history", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Run "+id)
	assert.Contains(t, out, "52 records, 22 resolved")

	out, _, err = executeCommand(t, "", "history", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted run "+id)

	_, _, err = executeCommand(t, "", "history", "show", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHistoryCmd_DeleteMissing(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand(t, "", "history", "delete", "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run missing not found")
}
