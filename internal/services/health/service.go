package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service reports process and record store health.
type Service struct {
	db Pinger
}

// NewService constructs a health service. A nil db means records are held in memory.
func NewService(db Pinger) *Service {
	return &Service{db: db}
}

// Status is the health payload.
type Status struct {
	OK      bool   `json:"ok"`
	Records string `json:"records"`
	DB      string `json:"db,omitempty"`
}

// Check pings the database when one is configured.
func (s *Service) Check(ctx context.Context) Status {
	if s == nil || s.db == nil {
		return Status{OK: true, Records: "memory"}
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		return Status{OK: false, Records: "postgres", DB: "unreachable"}
	}
	return Status{OK: true, Records: "postgres", DB: "up"}
}
