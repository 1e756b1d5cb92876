package mining

import "testing"

func TestDetectScope(t *testing.T) {
	tests := []struct {
		text string
		want Scope
	}{
		{"add 1 to hit rolls for attacks made with this weapon.", ScopeSelf},
		{"while this model is leading a unit, re-roll hit rolls.", ScopeUnit},
		{"while this unit contains a banner bearer, add 1 to hit rolls.", ScopeUnit},
		{"each time a model in the attached unit makes an attack.", ScopeUnit},
		{"the bodyguard unit gains this benefit.", ScopeUnit},
		{"you can re-roll wound rolls of 1 for this unit while this unit is within 6\".", ScopeUnit},
		{"models in that unit have a 5+ invulnerable save.", ScopeUnit},
		{"", ScopeSelf},
	}
	for _, tc := range tests {
		if got := detectScope(tc.text); got != tc.want {
			t.Errorf("detectScope(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestDetectRerolls(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNil   bool
		wantScope Scope
		want      map[string]string
	}{
		{
			name:    "no reroll mention",
			text:    "Add 1 to hit rolls for attacks made with this weapon.",
			wantNil: true,
		},
		{
			name:    "empty text",
			text:    "",
			wantNil: true,
		},
		{
			name:    "reroll mention without a matching phrase",
			text:    "This weapon's attacks never re-roll anything useful.",
			wantNil: true,
		},
		{
			name:      "wound rolls of 1, unit scope",
			text:      `You can re-roll wound rolls of 1 for this unit while this unit is within 6"`,
			wantScope: ScopeUnit,
			want:      map[string]string{KindWounds: "ones"},
		},
		{
			name:      "failed hit rolls, self scope",
			text:      "Each time this model attacks, re-roll failed hit rolls.",
			wantScope: ScopeSelf,
			want:      map[string]string{KindHits: "failed"},
		},
		{
			name:      "all damage rolls, hyphen omitted",
			text:      "You can reroll damage rolls for this weapon.",
			wantScope: ScopeSelf,
			want:      map[string]string{KindDamage: "all"},
		},
		{
			name:      "first writer wins per kind",
			text:      "Re-roll hit rolls of 1. Additionally, re-roll failed hit rolls in melee.",
			wantScope: ScopeSelf,
			want:      map[string]string{KindHits: "ones"},
		},
		{
			name:      "multiple kinds in one description",
			text:      "While leading a unit, re-roll hit rolls and re-roll wound rolls of 1.",
			wantScope: ScopeUnit,
			want:      map[string]string{KindHits: "all", KindWounds: "ones"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectRerolls(tc.text)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("DetectRerolls(%q) = %+v, want nil", tc.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("DetectRerolls(%q) = nil, want effects", tc.text)
			}
			if got.Scope != tc.wantScope {
				t.Errorf("scope = %q, want %q", got.Scope, tc.wantScope)
			}
			if len(got.Effects) != len(tc.want) {
				t.Fatalf("effects = %v, want %v", got.Effects, tc.want)
			}
			for kind, want := range tc.want {
				if got.Effects[kind] != want {
					t.Errorf("effects[%q] = %q, want %q", kind, got.Effects[kind], want)
				}
			}
		})
	}
}

func TestDetectModifiers(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNil   bool
		wantScope Scope
		want      map[string]int
	}{
		{
			name:    "no hit or wound roll mention",
			text:    "This model has a 4+ invulnerable save.",
			wantNil: true,
		},
		{
			name:    "mention without a matching phrase",
			text:    "Critical hit rolls score extra damage.",
			wantNil: true,
		},
		{
			name:      "add to hit, self scope",
			text:      "Add 1 to Hit rolls for attacks made with this weapon.",
			wantScope: ScopeSelf,
			want:      map[string]int{KindHits: 1},
		},
		{
			name:      "add and subtract cancel to zero",
			text:      "Add 1 to hit rolls. In your opponent's turn, subtract 1 from hit rolls.",
			wantScope: ScopeSelf,
			want:      map[string]int{KindHits: 0},
		},
		{
			name:      "improve wound rolls, unit scope",
			text:      "While this model is leading a unit, improve the wound rolls by 1.",
			wantScope: ScopeUnit,
			want:      map[string]int{KindWounds: 1},
		},
		{
			name:      "worsen hit rolls",
			text:      "Enemy units must worsen the hit rolls by 2 when targeting this model.",
			wantScope: ScopeSelf,
			want:      map[string]int{KindHits: -2},
		},
		{
			name:      "repeated matches sum",
			text:      "Add 1 to the hit roll. Add 2 to the hit roll in melee.",
			wantScope: ScopeSelf,
			want:      map[string]int{KindHits: 3},
		},
		{
			name:      "hit and wound together",
			text:      "Add 1 to hit rolls and subtract 1 from wound rolls.",
			wantScope: ScopeSelf,
			want:      map[string]int{KindHits: 1, KindWounds: -1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectModifiers(tc.text)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("DetectModifiers(%q) = %+v, want nil", tc.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("DetectModifiers(%q) = nil, want effects", tc.text)
			}
			if got.Scope != tc.wantScope {
				t.Errorf("scope = %q, want %q", got.Scope, tc.wantScope)
			}
			if len(got.Effects) != len(tc.want) {
				t.Fatalf("effects = %v, want %v", got.Effects, tc.want)
			}
			for kind, want := range tc.want {
				if got.Effects[kind] != want {
					t.Errorf("effects[%q] = %d, want %d", kind, got.Effects[kind], want)
				}
			}
		})
	}
}
