package rename

import "strings"

// Suffixes lists the extensions accepted on input. The check is case-sensitive.
var Suffixes = []string{".mp3", ".Mp3", ".MP3"}

// SuffixLength is the length of every entry in Suffixes.
const SuffixLength = 4

// OutputSuffix is appended to every synthesized name.
const OutputSuffix = ".mp3"

// IsValidSuffix reports whether name ends with one of accepted.
func IsValidSuffix(name string, accepted []string) bool {
	for _, suffix := range accepted {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
