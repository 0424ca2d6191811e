package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDecodesGridAndElements(t *testing.T) {
	src := `{
		"grid": {"width": 9, "height": 9},
		"elements": {
			"grid": {"id": "grid", "type": "grid"},
			"givens": {"id": "givens", "type": "givens", "value": {"0": 5}}
		}
	}`
	b, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 9, b.N())
	assert.True(t, b.HasType(KindGivens))
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadInitializesNilElements(t *testing.T) {
	b, err := Load(strings.NewReader(`{"grid": {"width": 4, "height": 4}}`))
	require.NoError(t, err)
	assert.NotNil(t, b.Elements)
	assert.Empty(t, b.Elements)
}
