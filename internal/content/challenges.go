// Package content holds the static challenge catalog. Challenge
// definitions are authoring-time data: they are never mutated at
// runtime and the engine only evaluates the rules it is given.
package content

import "codefix_backend/internal/validator"

// ChallengeSpec is one final-challenge exercise: presentation fields
// for the client plus the structural rules its submission must pass.
type ChallengeSpec struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Language    string           `json:"language"`
	InitialCode string           `json:"initialCode"`
	Rules       []validator.Rule `json:"-"`
}

var challenges = []ChallengeSpec{
	{
		ID:    "ch_html",
		Title: "Build a Personal Profile Page",
		Description: `Your mission is to build a personal profile page (Digital Business Card).

The page must include the following elements:
1. A main heading (h1) with your name.
2. An image (img) with proper alt text.
3. A sub-heading (h2) saying "About Me".
4. A paragraph (p) with a short bio, where at least one word is bold (strong).
5. A list (ul or ol) of at least 3 hobbies.
6. A link (a) to an external site that opens in a new tab.`,
		Language:    "html",
		InitialCode: "<!-- Write your code here -->\n",
		Rules: []validator.Rule{
			{Name: "main-heading", Kind: validator.HasElement, Tags: []string{"h1"}},
			{Name: "sub-heading", Kind: validator.HasElement, Tags: []string{"h2"}},
			{Name: "image-with-src", Kind: validator.HasAttribute, Tags: []string{"img"}, Attr: "src"},
			{Name: "paragraph", Kind: validator.HasElement, Tags: []string{"p"}},
			{Name: "bold-text", Kind: validator.HasElement, Tags: []string{"strong"}},
			{Name: "hobby-list", Kind: validator.HasNestedPair, Tags: []string{"ul", "ol"}, Inner: "li"},
			{Name: "external-link", Kind: validator.HasAttribute, Tags: []string{"a"}, Attr: "href"},
		},
	},
}

var challengeIndex = buildIndex()

func buildIndex() map[string]*ChallengeSpec {
	idx := make(map[string]*ChallengeSpec, len(challenges))
	for i := range challenges {
		idx[challenges[i].ID] = &challenges[i]
	}
	return idx
}

// Challenges returns the full catalog in authoring order.
func Challenges() []ChallengeSpec {
	return challenges
}

// ChallengeByID returns the challenge with the given id, or nil.
func ChallengeByID(id string) *ChallengeSpec {
	return challengeIndex[id]
}
