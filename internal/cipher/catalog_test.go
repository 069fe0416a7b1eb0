package cipher

import (
	"testing"

	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods_OrderAndBonuses(t *testing.T) {
	want := map[models.Method]int{
		models.Caesar: 20, models.XOR: 40, models.Base64: 30, models.Binary: 30, models.Hex: 30,
		models.Vigenere: 50, models.RailFence: 40, models.Playfair: 60, models.AES: 100, models.RSA: 100,
	}

	methods := Methods()
	require.Len(t, methods, len(want))
	assert.Equal(t, models.Caesar, methods[0].ID)
	assert.Equal(t, models.RSA, methods[len(methods)-1].ID)

	for _, m := range methods {
		assert.Equal(t, want[m.ID], m.SecurityScore, m.ID)
	}
}

func TestMethods_ReturnsCopy(t *testing.T) {
	methods := Methods()
	methods[0].Name = "changed"

	assert.Equal(t, "Caesar Cipher", Methods()[0].Name)
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(models.RSA)
	require.True(t, ok)
	assert.Equal(t, models.KeyPair, info.KeyClass)
	assert.True(t, info.Simulated)

	_, ok = Lookup("enigma")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Vigenère Cipher", DisplayName(models.Vigenere))
	assert.Equal(t, "enigma", DisplayName("enigma"))
	assert.True(t, IsKnown(models.Hex))
	assert.False(t, IsKnown(""))
}

func TestParseShift(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{"29", 3, true},
		{"-3", 23, true},
		{"99999999999", 3, true},
		{"99999999999999999999", 21, true},
		{" 5x", 5, true},
		{"x5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseShift(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{"  42abc", 42, true},
		{"-7", -7, true},
		{"+8", 8, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"99999999999999999999", maxKeyValue, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
