package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLP(t *testing.T) {
	assert.Equal(t, "$0", CLP(0))
	assert.Equal(t, "$190", CLP(190))
	assert.Equal(t, "$1.190", CLP(1190))
	assert.Equal(t, "$25.990", CLP(25990))
	assert.Equal(t, "$1.234.567", CLP(1234567))
	assert.Equal(t, "-$810", CLP(-810))
}
