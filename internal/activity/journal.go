package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Notification struct {
	ID        uuid.UUID
	Message   string
	CreatedAt time.Time
}

// Journal writes core activity to a zerolog logger and keeps every notification
// in an inbox the console can read back.
type Journal struct {
	log   zerolog.Logger
	inbox []Notification
	now   func() time.Time
}

func NewJournal(log zerolog.Logger) *Journal {
	return &Journal{
		log: log.With().Str("component", "activity").Logger(),
		now: time.Now,
	}
}

func (j *Journal) Log(message string) {
	j.log.Info().Msg(message)
}

func (j *Journal) Notify(message string) {
	n := Notification{
		ID:        uuid.New(),
		Message:   message,
		CreatedAt: j.now().UTC(),
	}
	j.inbox = append(j.inbox, n)
	j.log.Info().
		Str("notification_id", n.ID.String()).
		Msg("notification: " + message)
}

// Drain returns the pending notifications and empties the inbox.
func (j *Journal) Drain() []Notification {
	out := j.inbox
	j.inbox = nil
	return out
}
