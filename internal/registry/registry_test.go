package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjectID(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{link: "https://connection.keboola.com/admin/projects/12345", want: "12345"},
		{link: "https://x.keboola.com/projects/99", want: "99"},
		{link: "https://connection.eu-central-1.keboola.com/admin/projects/42/dashboard", want: "42"},
		{link: "https://example.com/foo", want: ""},
		{link: "http://connection.keboola.com/admin/projects/1", want: ""},
		{link: "https://connection.keboola.com/admin/projects/", want: ""},
		{link: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractProjectID(tt.link))
		})
	}
}

func TestParseStack(t *testing.T) {
	stack, err := ParseStack(" eu ")
	require.NoError(t, err)
	assert.Equal(t, StackEU, stack)

	_, err = ParseStack("")
	require.ErrorIs(t, err, ErrValidation)
	_, err = ParseStack("APAC")
	require.ErrorIs(t, err, ErrValidation)
}
