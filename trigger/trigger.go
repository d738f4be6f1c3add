package trigger

import (
	"regexp"
	"strings"

	"github.com/ayunami2000/sdpictures/textfilter"
)

// A request verb (or "me" ending a word), then later in the text a whole word
// naming a picture, optionally plural.
var requestPattern = regexp.MustCompile(`(?ims)(send|mail|message|me)\b.+?\b(image|pic(ture)?|photo|snap(shot)?|selfie|meme)s?\b`)

var ofPattern = regexp.MustCompile(`\bof\b`)

const (
	subjectTemplate = "Please provide a detailed and vivid description of "
	selfDescription = "Please provide a detailed description of your appearance, your surroundings and what you are doing right now"
)

// HasImageRequest reports whether text asks for a picture. Emphasised
// *actions* are ignored.
func HasImageRequest(text string) bool {
	return requestPattern.MatchString(textfilter.StripEmphasis(text))
}

// RewriteRequest turns a picture request into an instruction asking the text
// model to describe the subject, which later becomes the image prompt.
func RewriteRequest(text string) string {
	text = strings.ToLower(text)

	loc := ofPattern.FindStringIndex(text)
	if loc == nil {
		return selfDescription
	}

	subject := strings.TrimSpace(text[loc[1]:])
	if subject == "" {
		return selfDescription
	}

	return subjectTemplate + subject
}
