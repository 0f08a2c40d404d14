package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueDateDateOnlyIsUTCStartOfDay(t *testing.T) {
	var req CreateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","due_date":"2026-09-19"}`), &req))

	got := req.DueDate.Ptr()
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC), *got)
}

func TestDueDateRFC3339(t *testing.T) {
	var req CreateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","due_date":"2026-09-19T15:30:00Z"}`), &req))

	got := req.DueDate.Ptr()
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2026, 9, 19, 15, 30, 0, 0, time.UTC)))
}

func TestDueDateLocalDatetimeWithoutZone(t *testing.T) {
	var req CreateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","due_date":"2026-09-19T15:30:00"}`), &req))
	require.NotNil(t, req.DueDate.Ptr())
}

func TestDueDateEmptyAndNullMeanUnset(t *testing.T) {
	for _, body := range []string{
		`{"title":"t"}`,
		`{"title":"t","due_date":null}`,
		`{"title":"t","due_date":""}`,
		`{"title":"t","due_date":"  "}`,
	} {
		var req CreateTodoRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), "body %s", body)
		assert.Nil(t, req.DueDate.Ptr(), "body %s", body)
	}
}

func TestDueDateRejectsUnparseable(t *testing.T) {
	var req CreateTodoRequest
	err := json.Unmarshal([]byte(`{"title":"t","due_date":"next tuesday"}`), &req)
	assert.Error(t, err)
}

func TestUpdateRequestDueDateTriState(t *testing.T) {
	var absent UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &absent))
	assert.False(t, absent.DueDate.Present())
	assert.Nil(t, absent.Completed)

	var set UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":"2026-09-19","completed":true}`), &set))
	assert.True(t, set.DueDate.Present())
	assert.NotNil(t, set.DueDate.Ptr())
	require.NotNil(t, set.Completed)
	assert.True(t, *set.Completed)

	// Null and "" are present but unset: the edit clears the deadline.
	for _, body := range []string{`{"due_date":null}`, `{"due_date":""}`} {
		var clear UpdateTodoRequest
		require.NoError(t, json.Unmarshal([]byte(body), &clear), "body %s", body)
		assert.True(t, clear.DueDate.Present(), "body %s", body)
		assert.Nil(t, clear.DueDate.Ptr(), "body %s", body)
	}
}
