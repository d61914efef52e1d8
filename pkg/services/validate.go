package services

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-z0-9]+@[a-z]+\.[a-z]{2,3}`)
	// scheme://host.tld followed by an optional path; not a full RFC 3986 check.
	urlPattern = regexp.MustCompile(`(http|ftp|https)://([\w_-]+(?:(?:\.[\w_-]+)+))([\w.,@?^=%&:\\/~+#-]*[\w@?^=%&\\/~+#-])`)
)

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

func RemoveSlashes(s string) string {
	return strings.ReplaceAll(s, "/", "")
}

// FindDuplicates returns every element that already appeared earlier, so an
// item present three times is reported twice.
func FindDuplicates(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var dups []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			dups = append(dups, item)
			continue
		}
		seen[item] = struct{}{}
	}
	return dups
}
