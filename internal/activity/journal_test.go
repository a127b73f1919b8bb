package activity

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/rentals/internal/model"
)

var _ model.Events = (*Journal)(nil)

func TestJournalLogWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	journal := NewJournal(zerolog.New(&buf))

	journal.Log("agreement 1 created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "activity", line["component"])
	assert.Equal(t, "agreement 1 created", line["message"])
	assert.Empty(t, journal.Drain())
}

func TestJournalNotifyKeepsInbox(t *testing.T) {
	var buf bytes.Buffer
	journal := NewJournal(zerolog.New(&buf))

	journal.Notify("first")
	journal.Notify("second")

	notifications := journal.Drain()
	require.Len(t, notifications, 2)
	assert.Equal(t, "first", notifications[0].Message)
	assert.Equal(t, "second", notifications[1].Message)
	assert.NotEqual(t, uuid.Nil, notifications[0].ID)
	assert.NotEqual(t, notifications[0].ID, notifications[1].ID)
	assert.Equal(t, 2, strings.Count(buf.String(), "notification_id"))
	assert.Empty(t, journal.Drain())
}
