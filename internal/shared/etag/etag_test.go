package etag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/shared/fault"
)

func TestParse(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		version, err := Parse(`"3"`)
		require.NoError(t, err)
		assert.Equal(t, 3, version)
	})

	t.Run("zero token", func(t *testing.T) {
		version, err := Parse(`"0"`)
		require.NoError(t, err)
		assert.Equal(t, 0, version)
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"missing token", ""},
		{"unquoted", "3"},
		{"not a number", `"abc"`},
		{"negative", `"-1"`},
		{"empty quotes", `""`},
		{"trailing text", `"3" `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			var invalid *fault.VersionInvalid
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.raw, invalid.Raw)
		})
	}
}

func TestCheckCurrent(t *testing.T) {
	const id = "00000000-0000-0000-0000-000000000001"

	t.Run("equal passes", func(t *testing.T) {
		assert.NoError(t, CheckCurrent(id, 2, 2))
	})

	t.Run("greater passes", func(t *testing.T) {
		assert.NoError(t, CheckCurrent(id, 3, 2))
	})

	t.Run("older is rejected", func(t *testing.T) {
		err := CheckCurrent(id, 1, 2)
		var outdated *fault.VersionOutdated
		require.ErrorAs(t, err, &outdated)
		assert.Equal(t, id, outdated.ID)
		assert.Equal(t, 1, outdated.Version)
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, `"0"`, Format(0))
	assert.Equal(t, `"12"`, Format(12))
}
