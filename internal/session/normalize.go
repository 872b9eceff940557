package session

import "strings"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\t", "    ")

// NormalizeText converts every line ending to "\n" and every tab to four spaces.
// It is applied to all text read from disk before it reaches a Buffer.
func NormalizeText(s string) string {
	return lineEndings.Replace(s)
}
