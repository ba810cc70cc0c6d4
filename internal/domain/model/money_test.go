package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Money
	}{
		{name: "whole amount", input: "16", expected: 1600},
		{name: "two decimals", input: "0.90", expected: 90},
		{name: "half rounds up", input: "1.005", expected: 101},
		{name: "below half rounds down", input: "1.004", expected: 100},
		{name: "negative half rounds away from zero", input: "-1.005", expected: -101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MoneyFromDecimal(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney(" 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, Money(1250), m)

	_, err = ParseMoney("twelve")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseMoney("x") })
}

func TestMoney_Formatting(t *testing.T) {
	tests := []struct {
		name   string
		amount Money
		str    string
		euro   string
	}{
		{name: "zero", amount: 0, str: "0.00", euro: "€0,00"},
		{name: "cents only", amount: 90, str: "0.90", euro: "€0,90"},
		{name: "trailing zero kept", amount: 1190, str: "11.90", euro: "€11,90"},
		{name: "large amount", amount: 1000000, str: "10000.00", euro: "€10000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.amount.String())
			assert.Equal(t, tt.euro, tt.amount.Euro())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	price := MustParseMoney("1.80")
	assert.Equal(t, Money(540), price.Times(3))
	assert.Equal(t, int64(180), price.Cents())
	assert.InDelta(t, 1.8, price.Float64(), 1e-9)
	assert.True(t, price.Decimal().Equal(decimal.RequireFromString("1.8")))
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Total Money `json:"total"`
	}{Total: 1190})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 11.90}`, string(data))
	assert.Contains(t, string(data), "11.90")

	var decoded struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 6.5, "b": "12.00"}`), &decoded))
	assert.Equal(t, Money(650), decoded.A)
	assert.Equal(t, Money(1200), decoded.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &decoded))
}
