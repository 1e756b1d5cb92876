package mining

import (
	"regexp"
	"strconv"
	"strings"
)

// All mining runs over a lower-cased copy of the description, so the
// patterns themselves are written lower case instead of using (?i).

// unitScopeMarkers promote an effect from "self" to "unit" scope. These are
// the stock phrasings 10th-edition ability text uses for effects that cover
// a whole unit or an attached bodyguard unit.
var unitScopeMarkers = []string{
	"leading a unit",
	"unit contains",
	"attached unit",
	"bodyguard unit",
	"while this unit",
	"models in that unit",
}

func detectScope(lower string) Scope {
	for _, marker := range unitScopeMarkers {
		if strings.Contains(lower, marker) {
			return ScopeUnit
		}
	}
	return ScopeSelf
}

// rerollPhrase matches "re-roll(s) [all|any|failed] <hit|wound|damage>
// roll(s) [of 1(s)/one(s)]", hyphen optional.
var rerollPhrase = regexp.MustCompile(`re-?rolls?\s+(?:(?:all|any|one or more|failed)\s+)?(hit|wound|damage)\s+rolls?(\s+of\s+(?:1s?|ones?))?`)

func canonicalKind(word string) string {
	switch word {
	case "hit":
		return KindHits
	case "wound":
		return KindWounds
	default:
		return KindDamage
	}
}

// DetectRerolls mines a description for reroll permissions. Returns nil when
// the text never mentions rerolling or no phrase matched. Within one
// description the first value found for a roll kind wins.
func DetectRerolls(description string) *Rerolls {
	lower := strings.ToLower(description)
	if !strings.Contains(lower, "re-roll") && !strings.Contains(lower, "reroll") {
		return nil
	}

	effects := make(map[string]string)
	for _, m := range rerollPhrase.FindAllStringSubmatch(lower, -1) {
		kind := canonicalKind(m[1])
		if _, seen := effects[kind]; seen {
			continue
		}
		switch {
		case strings.Contains(m[0], "failed"):
			effects[kind] = "failed"
		case m[2] != "" || strings.Contains(m[0], "of 1"):
			effects[kind] = "ones"
		default:
			effects[kind] = "all"
		}
	}
	if len(effects) == 0 {
		return nil
	}

	return &Rerolls{Scope: detectScope(lower), Effects: effects}
}

// fixedKind builds an extractor for patterns where the roll kind is baked
// into the phrase and group 1 carries the magnitude.
func fixedKind(kind string, sign int) extractFunc {
	return func(match []string) (string, int, bool) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return "", 0, false
		}
		return kind, sign * n, true
	}
}

// kindAndValue builds an extractor for patterns capturing the roll kind in
// group 1 and the magnitude in group 2.
func kindAndValue(sign int) extractFunc {
	return func(match []string) (string, int, bool) {
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return "", 0, false
		}
		return canonicalKind(match[1]), sign * n, true
	}
}

// modifierPatterns is the fixed ordered phrase table for numeric hit/wound
// modifiers. Each pattern may match multiple times; magnitudes for the same
// roll kind are summed across all matches.
var modifierPatterns = []pattern{
	{
		name:    "add-to-hit",
		re:      regexp.MustCompile(`add (\d+) to (?:the |each |all )?hit rolls?`),
		extract: fixedKind(KindHits, +1),
	},
	{
		name:    "add-to-wound",
		re:      regexp.MustCompile(`add (\d+) to (?:the |each |all )?wound rolls?`),
		extract: fixedKind(KindWounds, +1),
	},
	{
		name:    "improve-by",
		re:      regexp.MustCompile(`improve (?:the )?(hit|wound) rolls? by (\d+)`),
		extract: kindAndValue(+1),
	},
	{
		name:    "subtract-from-hit",
		re:      regexp.MustCompile(`subtract (\d+) from (?:the |each |all )?hit rolls?`),
		extract: fixedKind(KindHits, -1),
	},
	{
		name:    "subtract-from-wound",
		re:      regexp.MustCompile(`subtract (\d+) from (?:the |each |all )?wound rolls?`),
		extract: fixedKind(KindWounds, -1),
	},
	{
		name:    "worsen-by",
		re:      regexp.MustCompile(`worsen (?:the )?(hit|wound) rolls? by (\d+)`),
		extract: kindAndValue(-1),
	},
}

// DetectModifiers mines a description for numeric hit/wound roll modifiers.
// Returns nil when the text never mentions hit or wound rolls, or when no
// phrase pattern matched.
func DetectModifiers(description string) *Modifiers {
	lower := strings.ToLower(description)
	if !strings.Contains(lower, "hit roll") && !strings.Contains(lower, "wound roll") {
		return nil
	}

	effects := make(map[string]int)
	matched := false
	for _, p := range modifierPatterns {
		for _, m := range p.re.FindAllStringSubmatch(lower, -1) {
			kind, delta, ok := p.extract(m)
			if !ok {
				continue
			}
			effects[kind] += delta
			matched = true
		}
	}
	if !matched {
		return nil
	}

	return &Modifiers{Scope: detectScope(lower), Effects: effects}
}
