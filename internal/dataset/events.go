package dataset

import (
	"regexp"
	"strings"
)

var (
	athleticsPrefix = regexp.MustCompile(`^Athletics\s*`)
	metresSuffix    = regexp.MustCompile(`\s*metres$`)
)

// NormalizeEvent shortens an event name for display. In order, it strips a
// leading "Athletics", rewrites a trailing "metres" as "m", then strips a
// leading repetition of the sport name:
//
//	NormalizeEvent("Athletics", "Athletics Men's 100 metres") == "Men's 100m"
//	NormalizeEvent("Swimming", "Swimming Women's 200 metres Butterfly") == "Women's 200 metres Butterfly"
func NormalizeEvent(sport, event string) string {
	event = athleticsPrefix.ReplaceAllLiteralString(event, "")
	event = metresSuffix.ReplaceAllLiteralString(event, "m")
	if sport != "" && strings.HasPrefix(event, sport) {
		event = strings.TrimLeftFunc(event[len(sport):], isSpace)
	}
	return event
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
