// Package validator decides whether a submitted markup snippet
// satisfies the structural requirements of a challenge. Checks are
// presence-only regex probes rather than a full parse, which keeps
// them robust against the half-finished markup learners type live.
// The accepted trade-off is that elements inside comments or string
// literals still count as present.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

type RuleKind string

const (
	// HasElement passes when an opening tag of one of the rule's tags
	// is present anywhere in the submission.
	HasElement RuleKind = "has-element"
	// HasAttribute passes when an element carries the named attribute
	// with a non-empty value.
	HasAttribute RuleKind = "has-attribute-on-element"
	// HasNestedPair passes when both a container tag and an inner tag
	// are present. Nesting is not verified structurally, only joint
	// presence, matching the presence-only contract.
	HasNestedPair RuleKind = "has-nested-pair"
)

// Rule is one named structural requirement. Rules are declarative so a
// challenge's requirements read as data; evaluation combines them with
// a logical AND and individual outcomes stay available for callers
// that want to report more than the final boolean.
type Rule struct {
	Name  string
	Kind  RuleKind
	Tags  []string // tag alternatives, e.g. ul|ol
	Attr  string   // HasAttribute: required non-empty attribute
	Inner string   // HasNestedPair: required inner tag
}

// RuleResult is the outcome of a single rule check.
type RuleResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Result is the outcome of checking one submission. Passed is the AND
// of every rule; Rules carries the per-rule breakdown.
type Result struct {
	Passed bool         `json:"passed"`
	Rules  []RuleResult `json:"rules"`
}

// Check evaluates every rule against the submitted code. It never
// fails: malformed or empty input simply makes rules not match.
func Check(code string, rules []Rule) Result {
	result := Result{Passed: true, Rules: make([]RuleResult, 0, len(rules))}
	for _, rule := range rules {
		ok := rule.matches(code)
		result.Rules = append(result.Rules, RuleResult{Name: rule.Name, Passed: ok})
		if !ok {
			result.Passed = false
		}
	}
	return result
}

func (r Rule) matches(code string) bool {
	for _, p := range r.patterns() {
		if !compile(p).MatchString(code) {
			return false
		}
	}
	return true
}

// patterns builds the regex probes for the rule. All probes are
// case-insensitive; attribute probes accept any attribute order and
// single, double or no quoting.
func (r Rule) patterns() []string {
	switch r.Kind {
	case HasElement:
		return []string{openTagPattern(r.Tags)}
	case HasAttribute:
		return []string{attrPattern(r.Tags, r.Attr)}
	case HasNestedPair:
		return []string{openTagPattern(r.Tags), openTagPattern([]string{r.Inner})}
	default:
		// Unknown kind matches nothing, failing the rule closed.
		return []string{`[^\s\S]`}
	}
}

func openTagPattern(tags []string) string {
	return fmt.Sprintf(`(?i)<(?:%s)\b[^>]*>`, strings.Join(quoteAll(tags), "|"))
}

func attrPattern(tags []string, attr string) string {
	return fmt.Sprintf(`(?i)<(?:%s)\b[^>]*\s%s\s*=\s*(?:"[^"]+"|'[^']+'|[^\s>"'][^\s>]*)`,
		strings.Join(quoteAll(tags), "|"), regexp.QuoteMeta(attr))
}

func quoteAll(tags []string) []string {
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return quoted
}

var patternCache sync.Map // pattern string -> *regexp.Regexp

func compile(pattern string) *regexp.Regexp {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	patternCache.Store(pattern, re)
	return re
}
