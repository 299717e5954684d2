package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 2.67, RoundWithTwoDecimalPlace(2.6666))
	assert.Equal(t, 2.66, RoundWithTwoDecimalPlace(2.664))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(100))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *date)

	// String vazia retorna a data zero, não um erro.
	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestDateOrNil(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, &date, DateOrNil(&date))

	var zero time.Time
	assert.Nil(t, DateOrNil(&zero))
	assert.Nil(t, DateOrNil(nil))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, first, 6)

	second, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestPrettyJson(t *testing.T) {
	out := PrettyJson(map[string]int{"rows": 3})
	assert.Contains(t, out, `"rows": 3`)

	out = PrettyJson([]byte(`{"cached":true}`))
	assert.Contains(t, out, `"cached": true`)
}
