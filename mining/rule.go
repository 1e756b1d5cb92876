package mining

import "regexp"

// Scope says who a mined effect applies to: the acting unit's own dice
// ("self") or the unit/aura it leads or is attached to ("unit").
type Scope string

const (
	ScopeSelf Scope = "self"
	ScopeUnit Scope = "unit"
)

// Canonical roll-kind keys used in effect maps.
const (
	KindHits   = "hits"
	KindWounds = "wounds"
	KindDamage = "damage"
)

// extractFunc turns one regex match into a roll kind and a signed magnitude.
type extractFunc func(match []string) (kind string, delta int, ok bool)

// pattern is the atomic unit of text mining: a compiled phrase plus its
// extractor. Patterns are evaluated in declaration order; the exact phrase
// set and its order are a behavioral contract: changing the wording silently
// changes output.
type pattern struct {
	name    string
	re      *regexp.Regexp
	extract extractFunc
}

// Rerolls is a mined reroll effect: roll kind → "all" | "failed" | "ones".
type Rerolls struct {
	Scope   Scope
	Effects map[string]string
}

// Modifiers is a mined numeric effect: roll kind → signed magnitude.
type Modifiers struct {
	Scope   Scope
	Effects map[string]int
}
