// Package prompt builds the instruction sent to the generation provider.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alnah/notegpt/internal/lang"
)

// summaryTemplate wraps the transcript. The numbered structure is a request
// to the model, not a schema the response is checked against.
const summaryTemplate = `Please provide a comprehensive summary of the following video transcript, highlighting the main points and key takeaways:

%s

Please structure the summary with:
1. Main topic/theme
2. Key points
3. Important details
4. Conclusion/takeaways`

// Summary returns the summary prompt for transcript.
// The template is English; for any other outputLang a "Respond in ..."
// line is prepended. A zero outputLang leaves the prompt untouched.
func Summary(transcript string, outputLang lang.Language) string {
	p := fmt.Sprintf(summaryTemplate, transcript)
	if outputLang.IsZero() || outputLang.IsEnglish() {
		return p
	}
	return fmt.Sprintf("Respond in %s.\n\n%s", outputLang.DisplayName(), p)
}

// Excerpt shortens a prompt for logs to at most n runes.
func Excerpt(p string, n int) string {
	p = strings.Join(strings.Fields(p), " ")
	r := []rune(p)
	if n <= 0 || len(r) <= n {
		return p
	}
	return string(r[:n]) + "..."
}
