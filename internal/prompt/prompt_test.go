package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/yanun0323/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out), &out
}

func TestValueRepromptsOnEmptyThenUpperCases(t *testing.T) {
	p, out := newTestPrompter("", "buy")

	v, err := Value(p, "Side (BUY/SELL): ", String, "BUY", "SELL")
	require.NoError(t, err)
	assert.Equal(t, "BUY", v)

	assert.Equal(t, 2, strings.Count(out.String(), "Side (BUY/SELL): "))
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid input: input cannot be empty"))
}

func TestValueRejectsOutsideChoices(t *testing.T) {
	p, out := newTestPrompter("", "buy2", "XYZ", "sell")

	v, err := Value(p, "> ", String, "BUY", "SELL")
	require.NoError(t, err)
	assert.Equal(t, "SELL", v)

	assert.Equal(t, 4, strings.Count(out.String(), "> "))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input: input is not one of the allowed values [BUY SELL]"))
}

func TestValueStringWithoutChoices(t *testing.T) {
	p, _ := newTestPrompter("  btcusdt  ")

	v, err := Value(p, "Symbol: ", String)
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", v)
}

func TestValueDecimal(t *testing.T) {
	testCases := []struct {
		desc     string
		lines    []string
		parser   Parser[decimal.Decimal]
		expected string
		invalid  int
	}{
		{"plain", []string{"0.01"}, Decimal, "0.01", 0},
		{"not a number first", []string{"abc", "1.5"}, Decimal, "1.5", 1},
		{"negative allowed by Decimal", []string{"-2"}, Decimal, "-2", 0},
		{"positive rejects zero and negative", []string{"0", "-1", "", "3"}, PositiveDecimal, "3", 3},
		{"exponent notation", []string{"1e50000000", "1E5", "2"}, PositiveDecimal, "2", 2},
		{"sign or dot alone", []string{"-", ".", "7.25"}, Decimal, "7.25", 2},
		{"too long", []string{"1" + strings.Repeat("0", 40), "10"}, PositiveDecimal, "10", 1},
		{"separators", []string{"1_000.50"}, PositiveDecimal, "1000.5", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			p, out := newTestPrompter(tc.lines...)

			v, err := Value(p, "Quantity: ", tc.parser)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.String())
			assert.Equal(t, tc.invalid, strings.Count(out.String(), "Invalid input: "))
		})
	}
}

func TestValueEOF(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n\n"), &out)

	_, err := Value(p, "Symbol: ", String)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("ethusdt"), &out)

	line, err := p.Line("Symbol: ")
	require.NoError(t, err)
	assert.Equal(t, "ethusdt", line)

	_, err = p.Line("Symbol: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestSideAndKind(t *testing.T) {
	p, _ := newTestPrompter("Sell", "stop_limit")

	side, err := Side(p, "Side: ")
	require.NoError(t, err)
	assert.Equal(t, enum.OrderSideSell, side)

	kind, err := Kind(p, "Type: ")
	require.NoError(t, err)
	assert.Equal(t, enum.OrderKindStopLimit, kind)
}

func TestSecretFallsBackToLine(t *testing.T) {
	p, out := newTestPrompter(" my-secret ")

	secret, err := p.Secret("Enter API Secret: ")
	require.NoError(t, err)
	assert.Equal(t, "my-secret", secret)
	assert.Contains(t, out.String(), "Enter API Secret: ")
}
