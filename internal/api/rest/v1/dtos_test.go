//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/entries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProjectRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   AddProjectRequest
		shouldErr bool
	}{
		{"Valid https", AddProjectRequest{URL: "https://demo.example.com/objects.inv"}, false},
		{"Valid http", AddProjectRequest{URL: "http://demo.example.com/objects.inv"}, false},
		{"Empty", AddProjectRequest{}, true},
		{"Not a URL", AddProjectRequest{URL: "objects.inv"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestNewEntryResponse_DispnameConvention(t *testing.T) {
	entry := &entries.EntryMeta{
		ID:          "e-1",
		Domain:      "py",
		Role:        "function",
		Name:        "demo.f",
		Dispname:    "-",
		URL:         "https://demo.example.com/api.html#demo.f",
		ProjectID:   "p-1",
		LastIndexed: time.Now().UTC(),
	}

	response := NewEntryResponse(entry)
	assert.Equal(t, "py:function", response.Type)
	assert.Equal(t, "demo.f", response.Dispname, "stored '-' means the display name is the object name")
}
