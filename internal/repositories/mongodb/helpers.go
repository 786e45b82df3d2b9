package mongodb

import "regexp"

// regexEscape quotes regex metacharacters so user input can be embedded in a
// case-insensitive exact-match filter.
func regexEscape(s string) string {
	return regexp.QuoteMeta(s)
}
