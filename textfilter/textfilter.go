// Package textfilter turns chat replies into short comma separated prompts
// for an image model.
package textfilter

import (
	"regexp"
	"strings"
)

// Matches as few characters as possible between two asterisks, or between an
// asterisk and the end of the string.
var emphasisPattern = regexp.MustCompile(`\*[^*]*?(\*|$)`)

// StripEmphasis removes *action* spans, including an unterminated trailing one.
func StripEmphasis(text string) string {
	return emphasisPattern.ReplaceAllString(text, "")
}

var quoteReplacer = strings.NewReplacer(`"`, "", "“", "", "”", "", "\r\n", " ", "\n", " ")

// ScrubReply prepares a bot reply for use as a picture description.
func ScrubReply(text string) string {
	return strings.TrimSpace(quoteReplacer.Replace(StripEmphasis(text)))
}

// Rule is one literal substring replacement.
type Rule struct {
	Old string
	New string
}

// Apply folds the rules over text in order. Later rules see the output of
// earlier ones.
func Apply(rules []Rule, text string) string {
	for _, r := range rules {
		text = strings.ReplaceAll(text, r.Old, r.New)
	}

	return text
}

// DefaultFillerWords lists conversational words that tend to confuse image
// models. Surrounding spaces are part of the match.
func DefaultFillerWords() []string {
	return []string{
		" i'm ", " i'd ", " a ", " an ", " i ", " me ", " my ", " mine ", " you ", " your ",
		" they ", "they", "'re ", "their", " at ", " the ", " that's ", "this", " who ", " and ",
		" but ", " all ", " it's", " i've ", " it ", " in ", " to ", " there ", " there's ",
		" these ", " those ", " where's ", " from ", " is ", " am ", " are ", " was ", " were ",
		" will ", " be ", " can ", " could ", " has ", " or ", " that ", " photos", " pictures",
		" of ", "okay", " ok ", " here", " go ", " done ", "danbooru", " wtf", " put ", " what ",
		" why ", " would ", "should ", " good ", " one ", " oh ", " yeah ", " now ", " tag ",
		" tags ", " tagged ", " tagged as ", " description ", " describe ", " also", "without",
		" while ", " goes ", "anyways", "because", " still ", " going ", " so ", " then ",
		" else ", " might ", "http", " let ", " try ", " let's ", "see ", " name ", " hello ",
		" do ", " where ", " represents ", " got ", " about ", " how ", " much ", " well ",
		" um ", " umm ",
	}
}

var punctuationRules = []Rule{
	{" - ", ""}, {"--", ""}, {".", ""}, {", ,", ""}, {",,", ""}, {" , ", ""},
	{"!", ""}, {"?", ""}, {";", ""}, {":", ""}, {",,", ""}, {"&", ""},
	{"(", ""}, {")", ""}, {"<", ""}, {">", ""}, {"/", ""}, {`\`, ""},
}

var spacingRules = []Rule{
	{" , ", " "},
	{"  ", " "},
}

type Normalizer struct {
	rules []Rule
}

// NewNormalizer builds the ordered rule table for words. An empty list selects
// DefaultFillerWords.
func NewNormalizer(words []string) *Normalizer {
	if len(words) == 0 {
		words = DefaultFillerWords()
	}

	rules := make([]Rule, 0, len(words)*3+len(punctuationRules)+len(spacingRules))
	for _, w := range words {
		w = strings.ToLower(w)
		bare := strings.TrimSpace(w)
		if bare == "" {
			continue
		}
		rules = append(rules,
			Rule{w, ", "},
			Rule{" " + bare + ",", ", "},
			Rule{" " + bare + ".", ", "},
		)
	}
	rules = append(rules, punctuationRules...)
	rules = append(rules, spacingRules...)

	return &Normalizer{rules: rules}
}

func (n *Normalizer) Rules() []Rule {
	return append([]Rule(nil), n.rules...)
}

// Compact lower-cases text and replaces filler words with comma separators.
// The result is a best effort tag list, not a sentence.
func (n *Normalizer) Compact(text string) string {
	text = " " + strings.ToLower(text) + " "
	text = Apply(n.rules, text)
	return strings.Trim(text, " ,")
}
