package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartekus/semantic-git-cz/internal/catalog"
)

func TestFormat_SubjectOnly(t *testing.T) {
	got := Format(catalog.Patch, catalog.Feat, "add user authentication", "")
	assert.Equal(t, "patch-feat: ✨ add user authentication", got)
}

func TestFormat_WithBody(t *testing.T) {
	body := "Drops the v1 endpoint.\nClients must migrate to v2."

	got := Format(catalog.Major, catalog.Fix, "remove legacy API", body)

	assert.Equal(t, "major-fix: 🐛 remove legacy API\n\nDrops the v1 endpoint.\nClients must migrate to v2.", got)
	assert.Equal(t, 1, strings.Count(got, "\n\n"))
	assert.True(t, strings.HasSuffix(got, body))
}

func TestFormat_EveryCombination(t *testing.T) {
	for _, impact := range catalog.Impacts() {
		for _, category := range catalog.Categories() {
			got := Format(impact, category, "subject", "")
			want := impact.Name() + "-" + category.Name() + ": " + category.Glyph() + " subject"

			assert.Equal(t, want, got)
			assert.NotContains(t, got, "\n")
			assert.Equal(t, got, Format(impact, category, "subject", ""), "format must be deterministic")
		}
	}
}

func TestCategoryMenuDescription(t *testing.T) {
	assert.Equal(t, "✨ A new feature", CategoryMenuDescription(catalog.Feat))
	assert.Equal(t, "⚡ A code change that improves performance", CategoryMenuDescription(catalog.Perf))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  one", Indent("one", "  "))
	assert.Equal(t, "  head\n\n  body\n  more", Indent("head\n\nbody\nmore", "  "))
}
