package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                        string
		version, date, commit       string
		wantVersion, wantDate, want string
	}{
		{
			name:        "all values set",
			version:     "1.0.0",
			date:        "2026-10-19",
			commit:      "abc123",
			wantVersion: "1.0.0",
			wantDate:    "2026-10-19",
			want:        "abc123",
		},
		{
			name:        "empty values become N/A",
			wantVersion: "N/A",
			wantDate:    "N/A",
			want:        "N/A",
		},
		{
			name:        "partially set",
			version:     "0.1.0",
			wantVersion: "0.1.0",
			wantDate:    "N/A",
			want:        "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.want, info.BuildCommit())
		})
	}
}
