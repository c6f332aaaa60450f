package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "25.50", Cents(2550).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-3.07", Cents(-307).String())
}

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Total Cents `json:"total"`
	}{Total: Cents(2550)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 25.50}`, string(out))
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, Cents(1000), FromFloat(10.00))
	assert.Equal(t, Cents(550), FromFloat(5.50))
	assert.Equal(t, Cents(1), FromFloat(0.01))
	// classic float representation case
	assert.Equal(t, Cents(2999), FromFloat(29.99))
}

func TestMul(t *testing.T) {
	assert.Equal(t, Cents(2000), Cents(1000).Mul(2))
	assert.Equal(t, Cents(0), Cents(550).Mul(0))
}
