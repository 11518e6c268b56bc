package resolver

import (
	"regexp"
	"strings"
)

// Namer derives a path segment from a group name.
type Namer interface {
	Segment(groupName string) string
}

// NamerFunc adapts a function to Namer.
type NamerFunc func(groupName string) string

// Segment implements Namer.
func (f NamerFunc) Segment(groupName string) string {
	return f(groupName)
}

var lowerUpperBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// Kebab inserts "-" wherever a lowercase letter is directly followed by an
// uppercase letter and lowercases the result, so "MoviestarplanetSwf" becomes
// "moviestarplanet-swf". Runs of capitals are not split: "HTTPServer" becomes
// "httpserver".
func Kebab(groupName string) string {
	return strings.ToLower(lowerUpperBoundary.ReplaceAllString(groupName, "${1}-${2}"))
}

// KebabNamer is the default Namer.
var KebabNamer Namer = NamerFunc(Kebab)
