// Package markup escapes and wraps text for Slack message markup.
package markup

import "strings"

// escaper replaces the three characters Slack reserves for control
// sequences. A single pass guarantees the entities introduced for < and >
// are never escaped again, matching ampersand-first substitution order.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape makes raw text safe for embedding in a Slack message.
func Escape(s string) string {
	return escaper.Replace(s)
}

// InlineCode wraps s in single backticks.
func InlineCode(s string) string {
	return "`" + s + "`"
}

// CodeBlock wraps s in a triple-backtick block.
func CodeBlock(s string) string {
	return "```" + s + "```"
}
