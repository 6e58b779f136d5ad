//go:build unit
// +build unit

package entries

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validEntry() EntryMeta {
	return EntryMeta{
		ID:          uuid.New().String(),
		Domain:      "py",
		Role:        "function",
		Name:        "os.path.join",
		Dispname:    "-",
		URL:         "https://docs.python.org/3/library/os.path.html#os.path.join",
		ProjectID:   uuid.New().String(),
		LastIndexed: time.Now(),
	}
}

func TestEntryMeta_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*EntryMeta)
		shouldErr bool
	}{
		{"valid entry", func(e *EntryMeta) {}, false},
		{"missing id", func(e *EntryMeta) { e.ID = "" }, true},
		{"non-uuid id", func(e *EntryMeta) { e.ID = "42" }, true},
		{"missing domain", func(e *EntryMeta) { e.Domain = "" }, true},
		{"domain with colon", func(e *EntryMeta) { e.Domain = "py:mod" }, true},
		{"role with whitespace", func(e *EntryMeta) { e.Role = "class method" }, true},
		{"missing name", func(e *EntryMeta) { e.Name = "" }, true},
		{"bad url", func(e *EntryMeta) { e.URL = "not a url" }, true},
		{"missing project", func(e *EntryMeta) { e.ProjectID = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)

			err := entry.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestEntryMeta_Kind(t *testing.T) {
	entry := validEntry()
	require.Equal(t, "py:function", entry.Kind())
}

func TestEntryMeta_DisplayName(t *testing.T) {
	entry := validEntry()
	require.Equal(t, "os.path.join", entry.DisplayName())

	entry.Dispname = "join()"
	require.Equal(t, "join()", entry.DisplayName())
	require.Equal(t, "join()", entry.String())
}
