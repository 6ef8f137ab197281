package diag

import "strings"

// Format renders a message template by substituting every "$name$"
// placeholder with args["name"], per spec §6. Placeholders with no entry
// in args are left as-is, so a caller can see exactly which substitution
// it forgot to supply.
func Format(template string, args map[string]string) string {
	if len(args) == 0 {
		return template
	}
	out := template
	for k, v := range args {
		out = strings.ReplaceAll(out, "$"+k+"$", v)
	}
	return out
}

// errorTemplates holds message templates for the error codes this module
// actually raises (tokenizer and parser driver scope); codes belonging to
// the out-of-scope semantic/type stages fall back to their bare IANA name
// via ErrorCode.Template.
var errorTemplates = map[ErrorCode]string{
	ErrorDirective:                 "$message$",
	MissingArgument:                "directive option $option$ requires an argument",
	LiteralContainsInvalidSequence: "literal contains an invalid sequence: $text$",
	SourceNotFound:                 "source file $path$ not found",
	AssetNotFound:                  "asset file $path$ not found",
	ConstantOverflow:               "numeric constant $text$ is out of range",
	MissingEndOfComments:           "comment starting at $location$ is never terminated",
	LineDirectiveWithoutFile:       "[[line=]] with no prior [[file=]] in this source",
	OutputFailure:                  "failed to write $path$: $reason$",
}

// Template returns c's message template, or its bare IANA name if none is
// registered.
func (c ErrorCode) Template() string {
	if t, ok := errorTemplates[c]; ok {
		return t
	}
	return c.String()
}

var warningTemplates = map[WarningCode]string{
	UnknownDirective:                    "unknown directive $name$",
	UnknownDirectiveArgument:            "unknown option $name$ for directive $directive$",
	DirectiveNotUnderstood:              "directive option $name$ could not be parsed",
	StatementSeparatorOperatorRedundant: "redundant statement separator; only one ';' was needed here",
	NewlineAfterContinuation:            "content follows a line-continuation '\\' on the same line",
	UnmatchedPush:                       "$category$ pop with no matching push",
	SourceNotFoundWarning:               "source file $path$ not found",
	AssetNotFoundWarning:                "asset file $path$ not found",
}

// Template returns c's message template, or its bare IANA name if none is
// registered.
func (c WarningCode) Template() string {
	if t, ok := warningTemplates[c]; ok {
		return t
	}
	return c.String()
}

// Template returns c's bare IANA name; no panic code is raised by the
// tokenizer or parser driver described here, so none carry a richer
// template.
func (c PanicCode) Template() string { return c.String() }

// Template returns c's bare IANA name.
func (c InformationalCode) Template() string { return c.String() }
