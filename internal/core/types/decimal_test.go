package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.004", "10"},
		{"10.005", "10.01"},
		{"10.014", "10.01"},
		{"-10.005", "-10.01"},
		{"0", "0"},
	}

	for _, tt := range tests {
		got := Round2(MustMoney(tt.in))
		assert.True(t, got.Equal(MustMoney(tt.want)), "Round2(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"99.49", "99"},
		{"99.50", "100"},
		{"99.51", "100"},
		{"-99.50", "-100"},
	}

	for _, tt := range tests {
		got := RoundWhole(MustMoney(tt.in))
		assert.True(t, got.Equal(MustMoney(tt.want)), "RoundWhole(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestPercent(t *testing.T) {
	got := Percent(MustMoney("200"), MustMoney("18"))
	assert.True(t, got.Equal(MustMoney("36")))

	got = Percent(MustMoney("999"), MustMoney("0"))
	assert.True(t, got.IsZero())
}

func TestMaxZero(t *testing.T) {
	assert.True(t, MaxZero(MustMoney("-5")).IsZero())
	assert.True(t, MaxZero(MustMoney("5")).Equal(MustMoney("5")))
	assert.True(t, MaxZero(decimal.Zero).IsZero())
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"decimal", MustMoney("12.5"), "12.5"},
		{"json number", json.Number("42.42"), "42.42"},
		{"string", " 7.75 ", "7.75"},
		{"empty string", "", "0"},
		{"garbage string", "abc", "0"},
		{"float64", 3.5, "3.5"},
		{"int", 11, "11"},
		{"int64", int64(-4), "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.in)
			assert.True(t, got.Equal(MustMoney(tt.want)), "Coerce(%v) = %s, want %s", tt.in, got, tt.want)
		})
	}
}
