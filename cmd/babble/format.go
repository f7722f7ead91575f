package main

import "strings"

// wrapWords joins words with single spaces, breaking the line after every
// perLine words. The result carries no trailing newline.
func wrapWords(words []string, perLine int) string {
	if perLine < 1 {
		perLine = 1
	}
	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			if i%perLine == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(w)
	}
	return sb.String()
}
