package isbn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := Parse("9783161484100")
		require.NoError(t, err)
		assert.Equal(t, Digits{9, 7, 8, 3, 1, 6, 1, 4, 8, 4, 1, 0, 0}, d)
	})

	t.Run("leading zeros kept", func(t *testing.T) {
		d, err := Parse("0000000000007")
		require.NoError(t, err)
		assert.Equal(t, int64(7), d.Value())
		assert.Equal(t, "0000000000007", d.String())
	})

	bad := []string{
		"",
		"978316148410",
		"97831614841000",
		"978-316148410",
		" 978316148410",
		"978316148410X",
		"９７８３１６１４８４１００",
	}
	for _, s := range bad {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrMalformedInput, "input %q", s)
	}
}

func TestDigits_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		var d Digits
		for j := range d {
			d[j] = uint8(rng.Intn(10))
		}
		back, err := Parse(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestDigits_Value(t *testing.T) {
	d, err := Parse("9783161484100")
	require.NoError(t, err)
	assert.Equal(t, int64(9783161484100), d.Value())
}
