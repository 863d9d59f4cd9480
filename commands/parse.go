package commands

import (
	"regexp"
	"strings"
)

// commandPattern recognizes a command token anchored at the very start of the
// text: a slash, the command word, an optional @botname and, after whitespace,
// the argument remainder. (?s) lets arguments span newlines.
var commandPattern = regexp.MustCompile(`(?s)^/(\w+)(?:@(\w+))?(?:\s+(.*))?$`)

// ParseOutcome is the structured form of a recognized command token.
// The zero value means the text carried no command.
type ParseOutcome struct {
	// Name is the command word without the leading slash, exactly as typed.
	Name string

	// TargetBot is the username after an optional @ suffix, without the @.
	// Empty when the sender did not address a specific bot.
	TargetBot string

	// Arguments is everything after the first whitespace run following the
	// token, verbatim. Empty when the token stood alone.
	Arguments string
}

// Matched reports whether the text carried a command token.
func (o ParseOutcome) Matched() bool {
	return o.Name != ""
}

// Parse recognizes a command token at the start of text. Text that does not
// begin with a well-formed token yields the zero outcome and no error; a
// command mentioned mid-sentence is not a command. Blank text is a caller
// error and yields ErrEmptyText.
func Parse(text string) (ParseOutcome, error) {
	if strings.TrimSpace(text) == "" {
		return ParseOutcome{}, ErrEmptyText
	}

	match := commandPattern.FindStringSubmatch(text)
	if match == nil {
		return ParseOutcome{}, nil
	}

	return ParseOutcome{
		Name:      match[1],
		TargetBot: match[2],
		Arguments: match[3],
	}, nil
}
