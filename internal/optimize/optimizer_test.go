package optimize_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filinglens/internal/optimize"
)

func TestOptimize_CollectsSections(t *testing.T) {
	text := strings.Join([]string{
		"Company registration number 01234567",
		"Balance sheet as at 31 March 2024",
		"Total assets amounted to 5,000,000",
		"Creditors falling due within one year",
		"Net current liabilities of 2,000,000",
		"Profit and loss account for the year",
		"Turnover for the year was 1,200,000",
		"Operating profit was 300,000 after costs",
		"Registered office: 1 High Street",
	}, "\n")

	out := optimize.Optimize(text)

	assert.Equal(t,
		"Balance sheet as at 31 March 2024\nTotal assets amounted to 5,000,000\nNet current liabilities of 2,000,000"+
			"\n\n"+
			"Profit and loss account for the year\nTurnover for the year was 1,200,000\nOperating profit was 300,000 after costs",
		out)
	assert.NotContains(t, out, "Registered office")
	assert.NotContains(t, out, "Creditors")
}

func TestOptimize_DropsShortSections(t *testing.T) {
	text := "Notes\nshort\nDirectors\nThe directors who served during the year are listed with their shareholdings below."

	sections := optimize.KeySections(text)

	require.Len(t, sections, 1)
	assert.True(t, strings.HasPrefix(sections[0], "Directors\n"))
}

func TestOptimize_IgnoresShortKeywordLines(t *testing.T) {
	sections := optimize.KeySections("cash 10\nprofit\nnet 5")
	assert.Empty(t, sections)
}

func TestOptimize_HeaderMustStartLine(t *testing.T) {
	text := "The accompanying notes form part of these financial statements and should be read together."

	sections := optimize.KeySections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, text, sections[0])
}

func TestOptimize_PrefixFallback(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 200)

	out := optimize.Optimize(text)

	assert.Equal(t, optimize.PrefixLength, utf8.RuneCountInString(out))
	assert.True(t, strings.HasPrefix(out, "lorem ipsum"))
}

func TestOptimize_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "hello world", optimize.Optimize("  hello   world "))
}

func TestOptimize_NeverExceedsCeiling(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2000; i++ {
		b.WriteString("Balance sheet total assets line with figures 1,000,000\n")
	}

	for _, in := range []string{b.String(), strings.Repeat("£", 20000), strings.Repeat("x", 100000)} {
		out := optimize.Optimize(in)
		assert.LessOrEqual(t, utf8.RuneCountInString(out), optimize.MaxExcerptLength)
	}
}

func TestOptimize_Deterministic(t *testing.T) {
	text := "Directors report\nThe directors approved a dividend of 50,000 during the year under review."
	assert.Equal(t, optimize.Optimize(text), optimize.Optimize(text))
}
