package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDatabaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "legacy postgres scheme is rewritten",
			in:   "postgres://u:p@db:5432/carelink",
			want: "postgresql://u:p@db:5432/carelink",
		},
		{
			name: "postgresql scheme is untouched",
			in:   "postgresql://u:p@db:5432/carelink",
			want: "postgresql://u:p@db:5432/carelink",
		},
		{
			name: "key-value DSN passes through",
			in:   "host=db user=u dbname=carelink",
			want: "host=db user=u dbname=carelink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDatabaseURL(tt.in))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.NotEmpty(t, cfg.ServerPort)
	assert.NotEmpty(t, cfg.DatabaseURL)
}
