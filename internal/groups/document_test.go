package groups

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_TopLevelSequence(t *testing.T) {
	t.Parallel()

	records, err := ParseDocument([]byte("- name: A\n- name: B\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0]["name"])
	assert.Equal(t, "B", records[1]["name"])
}

func TestParseDocument_MappingWithGroups(t *testing.T) {
	t.Parallel()

	records, err := ParseDocument([]byte("groups:\n  - name: A\n    packages: [vim, git]\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0]["name"])
	assert.Equal(t, []any{"vim", "git"}, records[0]["packages"])
}

func TestParseDocument_WrongShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "scalar top level", payload: "just a string\n"},
		{name: "mapping without groups key", payload: "other: value\n"},
		{name: "groups key holds a scalar", payload: "groups: nope\n"},
		{name: "groups key holds a mapping", payload: "groups:\n  name: A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := ParseDocument([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrNoGroupList)
			assert.Nil(t, records)
		})
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	t.Parallel()

	payload := []byte("groups:\n  - name: A\n   bad indent: [\n")
	records, err := ParseDocument(payload)
	assert.Nil(t, records)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, payload, parseErr.Payload)
	assert.NotNil(t, parseErr.Unwrap())
}

func TestParseDocument_EmptyDocument(t *testing.T) {
	t.Parallel()

	// A null or empty document is well-formed YAML but carries no group
	// list, so it lands on the wrong-shape path.
	for _, payload := range []string{"", "---\n", "# only a comment\n"} {
		records, err := ParseDocument([]byte(payload))
		assert.ErrorIs(t, err, ErrNoGroupList, "payload %q", payload)
		assert.Nil(t, records)
	}
}

func TestParseDocument_EmptySequence(t *testing.T) {
	t.Parallel()

	records, err := ParseDocument([]byte("[]\n"))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = ParseDocument([]byte("groups: []\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
