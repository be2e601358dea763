package grammar

import (
	"strings"
	"unicode"
)

// applyModifiers applies the reference-site modifiers, left to right. The
// supported set is the subset the shipped rule tables use: capitalize, a,
// s, ed.
func applyModifiers(text string, modifiers []string) string {
	for _, m := range modifiers {
		switch m {
		case "capitalize":
			text = capitalize(text)
		case "a":
			text = article(text) + " " + text
		case "s":
			text = pluralize(text)
		case "ed":
			text = pastTense(text)
		}
	}
	return text
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func article(s string) string {
	for _, r := range s {
		if strings.ContainsRune("aeiouAEIOU", r) {
			return "an"
		}
		return "a"
	}
	return "a"
}

func pluralize(s string) string {
	switch {
	case s == "":
		return s
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "h"), strings.HasSuffix(s, "x"):
		return s + "es"
	case strings.HasSuffix(s, "y") && !endsWithVowelBefore(s, 'y'):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}

func pastTense(s string) string {
	switch {
	case s == "":
		return s
	case strings.HasSuffix(s, "e"):
		return s + "d"
	case strings.HasSuffix(s, "y") && !endsWithVowelBefore(s, 'y'):
		return s[:len(s)-1] + "ied"
	default:
		return s + "ed"
	}
}

// endsWithVowelBefore reports whether the rune before the trailing suffix
// character is a vowel.
func endsWithVowelBefore(s string, suffix byte) bool {
	if len(s) < 2 || s[len(s)-1] != suffix {
		return false
	}
	return strings.ContainsRune("aeiouAEIOU", rune(s[len(s)-2]))
}
