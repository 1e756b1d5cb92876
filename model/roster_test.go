package model

import "testing"

func TestMergeRerollsFirstWriterWins(t *testing.T) {
	u := &Unit{}
	u.MergeRerolls(false, map[string]string{"hits": "ones"})
	u.MergeRerolls(false, map[string]string{"hits": "failed", "wounds": "all"})

	if u.UnitRerolls["hits"] != "ones" {
		t.Errorf("hits = %q, want ones (first writer wins)", u.UnitRerolls["hits"])
	}
	if u.UnitRerolls["wounds"] != "all" {
		t.Errorf("wounds = %q, want all", u.UnitRerolls["wounds"])
	}

	// Re-applying the same effect is idempotent.
	u.MergeRerolls(false, map[string]string{"hits": "ones"})
	if u.UnitRerolls["hits"] != "ones" {
		t.Errorf("hits after re-apply = %q, want ones", u.UnitRerolls["hits"])
	}
}

func TestMergeRerollsAuraTargetsSeparateTable(t *testing.T) {
	u := &Unit{}
	u.MergeRerolls(true, map[string]string{"wounds": "ones"})
	if len(u.UnitRerolls) != 0 {
		t.Errorf("UnitRerolls = %v, want empty", u.UnitRerolls)
	}
	if u.LeaderAuraRerolls["wounds"] != "ones" {
		t.Errorf("LeaderAuraRerolls = %v", u.LeaderAuraRerolls)
	}
}

func TestMergeModifiersSums(t *testing.T) {
	u := &Unit{}
	u.MergeModifiers(false, map[string]int{"hits": 1})
	u.MergeModifiers(false, map[string]int{"hits": 1})

	// Summation is deliberately not idempotent.
	if u.UnitModifiers["hits"] != 2 {
		t.Errorf("hits = %d, want 2", u.UnitModifiers["hits"])
	}

	u.MergeModifiers(false, map[string]int{"hits": -2, "wounds": 1})
	if u.UnitModifiers["hits"] != 0 {
		t.Errorf("hits = %d, want 0", u.UnitModifiers["hits"])
	}
	if u.UnitModifiers["wounds"] != 1 {
		t.Errorf("wounds = %d, want 1", u.UnitModifiers["wounds"])
	}

	u.MergeModifiers(true, map[string]int{"hits": 1})
	if u.LeaderAuraModifiers["hits"] != 1 {
		t.Errorf("aura hits = %d, want 1", u.LeaderAuraModifiers["hits"])
	}
}

func TestMarkLeader(t *testing.T) {
	u := &Unit{}
	u.MarkLeader([]string{"Intercessor Squad", "Scout Squad"})
	u.MarkLeader([]string{"Scout Squad", "Hellblaster Squad"})

	if !u.IsLeader {
		t.Error("IsLeader = false, want true")
	}
	want := []string{"Intercessor Squad", "Scout Squad", "Hellblaster Squad"}
	if len(u.LeaderOptions) != len(want) {
		t.Fatalf("LeaderOptions = %v, want %v", u.LeaderOptions, want)
	}
	for i := range want {
		if u.LeaderOptions[i] != want[i] {
			t.Errorf("LeaderOptions[%d] = %q, want %q", i, u.LeaderOptions[i], want[i])
		}
	}
}

func TestAddRefsDeduplicate(t *testing.T) {
	u := &Unit{}
	u.AddRuleRef("r1")
	u.AddRuleRef("r2")
	u.AddRuleRef("r1")
	u.AddRuleRef("")
	if len(u.Rules) != 2 || u.Rules[0] != "r1" || u.Rules[1] != "r2" {
		t.Errorf("Rules = %v, want [r1 r2]", u.Rules)
	}

	u.AddAbilityRef("a1")
	u.AddAbilityRef("a1")
	if len(u.Abilities) != 1 {
		t.Errorf("Abilities = %v, want [a1]", u.Abilities)
	}
}

func TestStatsEmpty(t *testing.T) {
	if !(Stats{}).Empty() {
		t.Error("zero Stats should be empty")
	}
	if (Stats{Move: `6"`}).Empty() {
		t.Error("Stats with a field set should not be empty")
	}
}
