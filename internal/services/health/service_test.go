package health

import (
	"context"
	"errors"
	"testing"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestCheck(t *testing.T) {
	cases := []struct {
		name string
		svc  *Service
		want Status
	}{
		{"memory", NewService(nil), Status{OK: true, Records: "memory"}},
		{"db up", NewService(pingerFunc(func(context.Context) error { return nil })), Status{OK: true, Records: "postgres", DB: "up"}},
		{"db down", NewService(pingerFunc(func(context.Context) error { return errors.New("refused") })), Status{OK: false, Records: "postgres", DB: "unreachable"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.svc.Check(context.Background()); got != tc.want {
				t.Fatalf("Check() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
