package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("not a locale", "BRL")
	assert.Error(t, err)

	_, err = New("pt-BR", "??")
	assert.Error(t, err)
}

func TestFormatRendersMinorUnits(t *testing.T) {
	f, err := New("pt-BR", "BRL")
	require.NoError(t, err)

	out := f.Format(150000)
	assert.Contains(t, out, "R$")
	assert.NotContains(t, out, "150000")
}
