package content_test

import (
	"strings"
	"testing"

	"codefix_backend/internal/content"
	"codefix_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A submission satisfying every requirement of the profile-page
// challenge, one required feature per line so single features can be
// removed in tests.
var passingProfilePage = []string{
	"<h1>Dana</h1>",
	`<img src="me.png" alt="portrait">`,
	"<h2>About Me</h2>",
	"<p>I <strong>love</strong> building things.</p>",
	"<ul><li>chess</li><li>hiking</li><li>baking</li></ul>",
	`<a href="https://github.com" target="_blank">GitHub</a>`,
}

func profilePageWithout(missing string) string {
	var kept []string
	for _, line := range passingProfilePage {
		if !strings.Contains(line, missing) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func TestProfilePageChallengePasses(t *testing.T) {
	spec := content.ChallengeByID("ch_html")
	require.NotNil(t, spec)

	result := validator.Check(strings.Join(passingProfilePage, "\n"), spec.Rules)
	assert.True(t, result.Passed)
}

func TestProfilePageMissingStrongFails(t *testing.T) {
	spec := content.ChallengeByID("ch_html")
	require.NotNil(t, spec)

	code := strings.ReplaceAll(strings.Join(passingProfilePage, "\n"), "<strong>", "")
	result := validator.Check(code, spec.Rules)
	assert.False(t, result.Passed)
}

func TestProfilePageEachFeatureRequired(t *testing.T) {
	spec := content.ChallengeByID("ch_html")
	require.NotNil(t, spec)

	// Removing any single required feature flips the result.
	for _, marker := range []string{"<h1>", "<img", "<h2>", "<p>", "<ul>", "<a "} {
		t.Run(marker, func(t *testing.T) {
			result := validator.Check(profilePageWithout(marker), spec.Rules)
			assert.False(t, result.Passed, "submission without %s should fail", marker)
		})
	}
}

func TestProfilePageUppercaseStillPasses(t *testing.T) {
	spec := content.ChallengeByID("ch_html")
	require.NotNil(t, spec)

	code := strings.ToUpper(strings.Join(passingProfilePage, "\n"))
	assert.True(t, validator.Check(code, spec.Rules).Passed)
}

func TestProfilePageAttributeOrderIrrelevant(t *testing.T) {
	spec := content.ChallengeByID("ch_html")
	require.NotNil(t, spec)

	code := strings.Join(passingProfilePage, "\n")
	reordered := strings.ReplaceAll(code, `<img src="me.png" alt="portrait">`, `<img alt="portrait" src="me.png">`)
	reordered = strings.ReplaceAll(reordered, `<a href="https://github.com" target="_blank">`, `<a target="_blank" href="https://github.com">`)

	assert.True(t, validator.Check(reordered, spec.Rules).Passed)
}

func TestCatalogLookup(t *testing.T) {
	assert.NotEmpty(t, content.Challenges())
	assert.Nil(t, content.ChallengeByID("no-such-challenge"))

	spec := content.ChallengeByID("ch_html")
	require.NotNil(t, spec)
	assert.Equal(t, "html", spec.Language)
	assert.Len(t, spec.Rules, 7)
}
