package mining

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// bulletGlyphs are the characters BattleScribe exports use to bullet the
// bodyguard list inside a Leader ability description.
const bulletGlyphs = "■●•◦▪‣*–—-"

var bulletPrefix = regexp.MustCompile(`^[■●•◦▪‣*–—-]+\s*`)

// IsLeaderAbility reports whether an ability name names the stock Leader
// ability. Only an exact (case-normalized, trimmed) match counts;
// "Leader of the Pack" style abilities must not trigger option mining.
func IsLeaderAbility(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == "leader"
}

// LeaderOptions scans a Leader ability description line by line and returns
// the bodyguard unit names listed as bullets, in order, deduplicated.
// Non-bullet lines (the "This model can be attached to..." preamble) and
// blank lines are skipped. The list may legitimately be empty.
func LeaderOptions(description string) []string {
	var options []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(description, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(trimmed)
		if !strings.ContainsRune(bulletGlyphs, first) && !bulletPrefix.MatchString(trimmed) {
			continue
		}
		name := strings.TrimSpace(bulletPrefix.ReplaceAllString(trimmed, ""))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		options = append(options, name)
	}
	return options
}
