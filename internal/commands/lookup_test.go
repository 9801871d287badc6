package commands

import (
	"errors"
	"testing"

	"github.com/fbressa/nomes/internal/ibge"
)

func TestFormatCounts(t *testing.T) {
	tests := []struct {
		name    string
		counts  []ibge.DecadeCount
		err     error
		wantErr bool
	}{
		{
			name:    "empty counts",
			counts:  []ibge.DecadeCount{},
			err:     nil,
			wantErr: false,
		},
		{
			name: "single decade",
			counts: []ibge.DecadeCount{
				{Decade: 1930, Count: 336477},
			},
			err:     nil,
			wantErr: false,
		},
		{
			name: "multiple decades",
			counts: []ibge.DecadeCount{
				{Decade: 1930, Count: 336477},
				{Decade: 1940, Count: 749053},
			},
			err:     nil,
			wantErr: false,
		},
		{
			name:    "with error",
			counts:  []ibge.DecadeCount{},
			err:     errors.New("test error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatCounts("maria", tt.counts, tt.err)

			// Check decades field exists
			data, ok := result["decades"].([]map[string]any)
			if !ok {
				t.Errorf("formatCounts() decades field is not []map[string]any")
				return
			}

			// Check data length matches counts length
			if len(data) != len(tt.counts) {
				t.Errorf("formatCounts() decades length = %d, want %d", len(data), len(tt.counts))
			}

			// Check name field
			if result["name"] != "maria" {
				t.Errorf("formatCounts() name = %v, want maria", result["name"])
			}

			// Check error field
			if tt.wantErr {
				errStr, ok := result["error"].(string)
				if !ok {
					t.Errorf("formatCounts() error field is not string when error is expected")
				}
				if errStr != tt.err.Error() {
					t.Errorf("formatCounts() error = %v, want %v", errStr, tt.err.Error())
				}
			} else if result["error"] != nil {
				t.Errorf("formatCounts() error = %v, want nil", result["error"])
			}
		})
	}
}
