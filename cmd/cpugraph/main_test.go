package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		window   int
		wantErr  bool
	}{
		{"defaults", 100 * time.Millisecond, 100, false},
		{"slow sampling", 5 * time.Second, 10, false},
		{"zero interval", 0, 100, true},
		{"negative interval", -time.Second, 100, true},
		{"zero window", time.Second, 0, true},
		{"negative window", time.Second, -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(tt.interval, tt.window)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
