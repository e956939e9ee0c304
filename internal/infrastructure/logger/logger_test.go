package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			log := New(Config{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	log := New(Config{Level: "info", Format: "console"})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
