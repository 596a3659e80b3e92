package newsdigest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Danda is the Bangla full stop.
const Danda = "।"

// spaceClass matches the same characters as unicode.IsSpace plus the
// U+001C..U+001F separators, for use inside a regexp character class.
const spaceClass = `\t-\r\x{1c}-\x{1f} \x{85}\x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}`

var (
	// Read-more links run from the phrase up to the next whitespace.
	readMoreRes = []*regexp.Regexp{
		regexp.MustCompile(`আরও পড়ুন[^` + spaceClass + `]*`),
		regexp.MustCompile(`পড়ুন[^` + spaceClass + `]*`),
		regexp.MustCompile(`বিস্তারিত[^` + spaceClass + `]*`),
		regexp.MustCompile(`সম্পূর্ণ খবর[^` + spaceClass + `]*`),
	}

	// Only Bangla month names are recognised; Latin dates are left alone.
	banglaDateRe = regexp.MustCompile(`\p{Nd}{1,2}[` + spaceClass + `]+` +
		`(?:জানুয়ারি|ফেব্রুয়ারি|মার্চ|এপ্রিল|মে|জুন|জুলাই|আগস্ট|সেপ্টেম্বর|অক্টোবর|নভেম্বর|ডিসেম্বর)` +
		`[` + spaceClass + `]+\p{Nd}{4}`)

	clockTimeRe = regexp.MustCompile(`\p{Nd}{1,2}:\p{Nd}{2}`)

	navigationRes = []*regexp.Regexp{
		regexp.MustCompile(`হোম[` + spaceClass + `]*বাংলাদেশ[` + spaceClass + `]*`),
		regexp.MustCompile(`প্রচ্ছদ[` + spaceClass + `]*`),
		regexp.MustCompile(`সর্বশেষ[` + spaceClass + `]*`),
	}

	spaceRunRe = regexp.MustCompile(`[` + spaceClass + `]+`)
	dotRunRe   = regexp.MustCompile(`\.+`)
	dandaRunRe = regexp.MustCompile(`।+`)
)

// Clean normalizes raw article text. It strips read-more boilerplate, Bangla
// dates, clock times and navigation crumbs, collapses whitespace, turns runs
// of periods into a single danda and makes sure the text ends with a
// sentence terminator. Empty input yields empty output.
//
// The steps run in a fixed order; earlier removals change what later
// patterns see.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	for _, re := range readMoreRes {
		text = re.ReplaceAllLiteralString(text, "")
	}

	text = banglaDateRe.ReplaceAllLiteralString(text, "")
	text = clockTimeRe.ReplaceAllLiteralString(text, "")

	for _, re := range navigationRes {
		text = re.ReplaceAllLiteralString(text, "")
	}

	text = spaceRunRe.ReplaceAllLiteralString(text, " ")
	text = dotRunRe.ReplaceAllLiteralString(text, Danda)

	if !endsWithTerminator(text) {
		text += Danda
	}

	return trimSpace(text)
}

// CollapseSpace replaces every whitespace run in s with a single space and
// trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// TrimSpace trims leading and trailing whitespace, including the
// U+001C..U+001F separators that strings.TrimSpace keeps.
func TrimSpace(s string) string {
	return trimSpace(s)
}

func endsWithTerminator(s string) bool {
	return strings.HasSuffix(s, Danda) || strings.HasSuffix(s, ".")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
