package validator_test

import (
	"testing"

	"codefix_backend/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestHasElement(t *testing.T) {
	rules := []validator.Rule{
		{Name: "heading", Kind: validator.HasElement, Tags: []string{"h1"}},
	}

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"plain tag", "<h1>Hello</h1>", true},
		{"uppercase tag", "<H1>Hello</H1>", true},
		{"tag with attributes", `<h1 class="title" id="main">Hi</h1>`, true},
		{"unclosed tag still counts", "<h1>no closing", true},
		{"similar tag does not count", "<h10>nope</h10>", false},
		{"empty input", "", false},
		{"whitespace only", "   \n\t  ", false},
		{"missing element", "<p>text</p>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.Check(tt.code, rules)
			assert.Equal(t, tt.want, got.Passed)
		})
	}
}

func TestHasElementAlternatives(t *testing.T) {
	rules := []validator.Rule{
		{Name: "list", Kind: validator.HasElement, Tags: []string{"ul", "ol"}},
	}

	assert.True(t, validator.Check("<ul></ul>", rules).Passed)
	assert.True(t, validator.Check("<ol></ol>", rules).Passed)
	assert.False(t, validator.Check("<li>orphan</li>", rules).Passed)
}

func TestHasAttribute(t *testing.T) {
	rules := []validator.Rule{
		{Name: "image", Kind: validator.HasAttribute, Tags: []string{"img"}, Attr: "src"},
	}

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"double quotes", `<img src="x.png">`, true},
		{"single quotes", `<img src='x.png'>`, true},
		{"no quotes", `<img src=x.png>`, true},
		{"attribute order independent", `<img alt="me" src="x.png">`, true},
		{"uppercase", `<IMG SRC="x.png">`, true},
		{"self closing", `<img src="x.png" />`, true},
		{"empty value fails", `<img src="">`, false},
		{"attribute missing", `<img alt="me">`, false},
		{"wrong element", `<a src="x.png">`, false},
		{"similar attribute name fails", `<img data-src="x.png">`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.Check(tt.code, rules)
			assert.Equal(t, tt.want, got.Passed)
		})
	}
}

func TestHasNestedPair(t *testing.T) {
	rules := []validator.Rule{
		{Name: "list", Kind: validator.HasNestedPair, Tags: []string{"ul", "ol"}, Inner: "li"},
	}

	assert.True(t, validator.Check("<ul><li>a</li></ul>", rules).Passed)
	assert.True(t, validator.Check("<OL><LI>a</LI></OL>", rules).Passed)
	assert.False(t, validator.Check("<ul></ul>", rules).Passed, "container without items")
	assert.False(t, validator.Check("<li>a</li>", rules).Passed, "items without container")
}

func TestCheckIsDeterministic(t *testing.T) {
	rules := []validator.Rule{
		{Name: "heading", Kind: validator.HasElement, Tags: []string{"h1"}},
		{Name: "image", Kind: validator.HasAttribute, Tags: []string{"img"}, Attr: "src"},
	}
	code := `<h1>Hi</h1><img src="a.png">`

	first := validator.Check(code, rules)
	second := validator.Check(code, rules)
	assert.Equal(t, first, second)
	assert.True(t, first.Passed)
}

func TestCheckReportsPerRuleResults(t *testing.T) {
	rules := []validator.Rule{
		{Name: "heading", Kind: validator.HasElement, Tags: []string{"h1"}},
		{Name: "paragraph", Kind: validator.HasElement, Tags: []string{"p"}},
	}

	result := validator.Check("<h1>only heading</h1>", rules)
	assert.False(t, result.Passed)
	assert.Len(t, result.Rules, 2)
	assert.True(t, result.Rules[0].Passed)
	assert.False(t, result.Rules[1].Passed)
}

func TestUnknownRuleKindFailsClosed(t *testing.T) {
	rules := []validator.Rule{
		{Name: "bogus", Kind: validator.RuleKind("no-such-kind")},
	}
	assert.False(t, validator.Check("<h1>anything</h1>", rules).Passed)
}
