package game

import (
	"time"

	"github.com/google/uuid"
)

// Session describes one played game.
type Session struct {
	UUID      string    `json:"uuid"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Ticks     int       `json:"ticks"`
	Length    int       `json:"length"`
	Outcome   string    `json:"outcome,omitempty"`
}

func NewSession() *Session {
	return &Session{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Duration returns the elapsed game time in seconds.
func (s *Session) Duration() float64 {
	end := s.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(s.StartTime).Seconds()
}
