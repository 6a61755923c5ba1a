package gldriver

import "strings"

// trimLog drops the NUL terminator and trailing whitespace GL drivers append
// to info logs.
func trimLog(raw []byte) string {
	s := string(raw)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, " \t\r\n")
}
