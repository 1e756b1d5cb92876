package model

// Profile type names the extraction recognizes. Anything else is ignored.
const (
	ProfileUnit      = "Unit"
	ProfileRanged    = "Ranged Weapons"
	ProfileMelee     = "Melee Weapons"
	ProfileAbilities = "Abilities"
)

// Roster is the compact output document. Rules and abilities are global
// deduplicated tables; units reference them by id.
type Roster struct {
	ArmyName    string              `json:"armyName"`
	Faction     string              `json:"faction"`
	PointsTotal int                 `json:"pointsTotal"`
	Rules       map[string]*Rule    `json:"rules"`
	Abilities   map[string]*Ability `json:"abilities"`
	Units       []*Unit             `json:"units"`
	// Attachments maps a host unit id to the leader unit ids embedded in it.
	Attachments map[string][]string `json:"attachments,omitempty"`
}

func NewRoster() *Roster {
	return &Roster{
		Rules:     make(map[string]*Rule),
		Abilities: make(map[string]*Ability),
	}
}

// Rule is a globally deduplicated rule record.
type Rule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Hidden      bool   `json:"hidden"`
}

// Ability is a globally deduplicated ability record.
type Ability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Stats is a unit statline. Empty string means unknown; a unit whose
// profiles carried no statline at all serializes as {}.
type Stats struct {
	Move             string `json:"move,omitempty"`
	Toughness        string `json:"toughness,omitempty"`
	Save             string `json:"save,omitempty"`
	Wounds           string `json:"wounds,omitempty"`
	Leadership       string `json:"leadership,omitempty"`
	ObjectiveControl string `json:"objectiveControl,omitempty"`
}

// Empty reports whether no field was ever filled.
func (s Stats) Empty() bool {
	return s == Stats{}
}

// WeaponModes links the two firing profiles of a multi-mode weapon.
// An id stays empty until that mode is seen.
type WeaponModes struct {
	Standard   string `json:"standard"`
	Overcharge string `json:"overcharge"`
}

// Weapon is a per-unit weapon summary aggregated across every model entry
// in the unit's subtree.
type Weapon struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	Characteristics  map[string]string `json:"characteristics"`
	IsHazardous      bool              `json:"is_hazardous,omitempty"`
	BaseName         string            `json:"base_name,omitempty"`
	OverchargeMode   string            `json:"overcharge_mode,omitempty"`
	Count            int               `json:"count"`
	ModelsWithWeapon int               `json:"models_with_weapon"`
}

// Unit is one flattened roster entry. Sub-model entries of a multi-model
// unit nest under Models; everything else is top level.
type Unit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Stats  Stats  `json:"stats"`
	Points int    `json:"points"`
	Count  int    `json:"count"`

	Models        []*Unit                 `json:"models,omitempty"`
	Weapons       []*Weapon               `json:"weapons,omitempty"`
	LinkedWeapons map[string]*WeaponModes `json:"linked_weapons,omitempty"`
	Rules         []string                `json:"rules,omitempty"`
	Abilities     []string                `json:"abilities,omitempty"`

	// Mined from ability text.
	IsLeader            bool              `json:"isLeader,omitempty"`
	LeaderOptions       []string          `json:"leaderOptions,omitempty"`
	UnitRerolls         map[string]string `json:"unitRerolls,omitempty"`
	LeaderAuraRerolls   map[string]string `json:"leaderAuraRerolls,omitempty"`
	UnitModifiers       map[string]int    `json:"unitModifiers,omitempty"`
	LeaderAuraModifiers map[string]int    `json:"leaderAuraModifiers,omitempty"`
	DefaultHostID       string            `json:"defaultHostId,omitempty"`
}

// AddRuleRef appends a rule reference, preserving insertion order and
// dropping duplicates.
func (u *Unit) AddRuleRef(id string) {
	if id == "" || contains(u.Rules, id) {
		return
	}
	u.Rules = append(u.Rules, id)
}

// AddAbilityRef appends an ability reference, preserving insertion order
// and dropping duplicates.
func (u *Unit) AddAbilityRef(id string) {
	if id == "" || contains(u.Abilities, id) {
		return
	}
	u.Abilities = append(u.Abilities, id)
}

// MarkLeader flags the unit as a leader and merges bodyguard options,
// keeping first-seen order without duplicates.
func (u *Unit) MarkLeader(options []string) {
	u.IsLeader = true
	for _, opt := range options {
		if !contains(u.LeaderOptions, opt) {
			u.LeaderOptions = append(u.LeaderOptions, opt)
		}
	}
}

// MergeRerolls records mined reroll effects. The first value stored for a
// roll kind wins; later mentions of the same kind are ignored.
func (u *Unit) MergeRerolls(aura bool, effects map[string]string) {
	target := &u.UnitRerolls
	if aura {
		target = &u.LeaderAuraRerolls
	}
	if *target == nil {
		*target = make(map[string]string)
	}
	for kind, value := range effects {
		if _, seen := (*target)[kind]; !seen {
			(*target)[kind] = value
		}
	}
}

// MergeModifiers records mined numeric modifiers, summing per roll kind.
func (u *Unit) MergeModifiers(aura bool, effects map[string]int) {
	target := &u.UnitModifiers
	if aura {
		target = &u.LeaderAuraModifiers
	}
	if *target == nil {
		*target = make(map[string]int)
	}
	for kind, delta := range effects {
		(*target)[kind] += delta
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
