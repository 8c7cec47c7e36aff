package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentIsEditable(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p := &Payment{CreatedAt: created}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just recorded", created, true},
		{"one second before the window closes", created.Add(EditWindow - time.Second), true},
		{"exactly at the window boundary", created.Add(EditWindow), false},
		{"after the window", created.Add(EditWindow + time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsEditable(tt.now))
		})
	}
}
