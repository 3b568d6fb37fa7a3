package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/apiserver/types"
)

func createTestTask(t *testing.T, router http.Handler, token, title string) types.Task {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/tasks", token, map[string]any{
		"title": title,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "create response: %s", rec.Body.String())

	var task types.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	require.NotEmpty(t, task.ID)
	return task
}

func TestTasks_RequireAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/tasks"},
		{http.MethodPost, "/tasks"},
		{http.MethodGet, "/tasks/some-id"},
		{http.MethodPut, "/tasks/some-id"},
		{http.MethodDelete, "/tasks/some-id"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestTasks_Lifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	registered := registerTestUser(t, router, "alice", "secret1")
	token := registered.Token

	task := createTestTask(t, router, token, "write report")
	assert.Equal(t, registered.User.ID, task.UserID)
	assert.False(t, task.Completed)

	rec := doJSON(t, router, http.MethodGet, "/tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list TaskListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, task.ID, list.Items[0].ID)

	rec = doJSON(t, router, http.MethodPut, "/tasks/"+task.ID, token, map[string]any{
		"title":     "write report",
		"completed": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated types.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Completed)

	rec = doJSON(t, router, http.MethodDelete, "/tasks/"+task.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/tasks/"+task.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTasks_Validation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	registered := registerTestUser(t, router, "alice", "secret1")

	rec := doJSON(t, router, http.MethodPost, "/tasks", registered.Token, map[string]any{
		"description": "no title",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Details)
	assert.Equal(t, "title", resp.Details[0].Field)
}

func TestTasks_ForeignTasksAreInvisible(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	alice := registerTestUser(t, router, "alice", "secret1")
	bob := registerTestUser(t, router, "bob", "secret2")

	task := createTestTask(t, router, alice.Token, "private")

	rec := doJSON(t, router, http.MethodGet, "/tasks/"+task.ID, bob.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/tasks/"+task.ID, bob.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/tasks", bob.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list TaskListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Zero(t, list.Total)

	// Still visible to its owner.
	rec = doJSON(t, router, http.MethodGet, "/tasks/"+task.ID, alice.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
