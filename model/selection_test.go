package model

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		typ  string
		want Kind
	}{
		{"configuration", KindConfiguration},
		{"unit", KindUnit},
		{"model", KindModel},
		{"upgrade", KindOther},
		{"", KindOther},
	}
	for _, tc := range tests {
		if got := classifyKind(tc.typ); got != tc.want {
			t.Errorf("classifyKind(%q) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestParseSelection(t *testing.T) {
	doc := gjson.Parse(`{
		"id": "sel-1",
		"name": "Intercessor Squad",
		"type": "unit",
		"number": 1,
		"categories": [
			{"name": "Infantry", "primary": false},
			{"name": "Battleline", "primary": true}
		],
		"costs": [{"name": "pts", "value": 80.0}],
		"profiles": [{
			"id": "prof-1",
			"name": "Intercessor Squad",
			"typeName": "Unit",
			"characteristics": [
				{"name": "M", "$text": "6\""},
				{"name": "T", "$text": "4"}
			]
		}],
		"rules": [{"id": "rule-1", "name": "Oath of Moment", "hidden": false}],
		"selections": [
			{"id": "sel-2", "name": "Intercessor", "type": "model", "number": 4},
			{"id": "sel-3", "name": "Intercessor Sergeant", "type": "model"}
		]
	}`)

	sel := ParseSelection(doc)

	if sel.Kind != KindUnit {
		t.Errorf("Kind = %v, want KindUnit", sel.Kind)
	}
	if sel.ID != "sel-1" || sel.Name != "Intercessor Squad" {
		t.Errorf("identity = (%q, %q)", sel.ID, sel.Name)
	}
	if len(sel.Categories) != 2 || !sel.Categories[1].Primary {
		t.Errorf("categories = %+v", sel.Categories)
	}
	if len(sel.Costs) != 1 || sel.Costs[0].Value != 80.0 {
		t.Errorf("costs = %+v", sel.Costs)
	}
	if len(sel.Profiles) != 1 {
		t.Fatalf("profiles = %+v", sel.Profiles)
	}
	if got := sel.Profiles[0].Characteristic("M"); got != `6"` {
		t.Errorf("Characteristic(M) = %q, want 6\"", got)
	}
	if got := sel.Profiles[0].Characteristic("SV"); got != "" {
		t.Errorf("Characteristic(SV) = %q, want empty", got)
	}
	if len(sel.Rules) != 1 || sel.Rules[0].Name != "Oath of Moment" {
		t.Errorf("rules = %+v", sel.Rules)
	}
	if len(sel.Children) != 2 {
		t.Fatalf("children = %+v", sel.Children)
	}
	if sel.Children[0].Kind != KindModel || sel.Children[0].Count() != 4 {
		t.Errorf("child 0 = %+v", sel.Children[0])
	}
	// number absent defaults to 1
	if sel.Children[1].Count() != 1 {
		t.Errorf("child 1 Count() = %d, want 1", sel.Children[1].Count())
	}
}

func TestParseSelectionMissingEverything(t *testing.T) {
	sel := ParseSelection(gjson.Parse(`{}`))
	if sel.Kind != KindOther {
		t.Errorf("Kind = %v, want KindOther", sel.Kind)
	}
	if sel.ID != "" || sel.Name != "" {
		t.Errorf("identity = (%q, %q), want empty", sel.ID, sel.Name)
	}
	if sel.Count() != 1 {
		t.Errorf("Count() = %d, want 1", sel.Count())
	}
	if len(sel.Children) != 0 {
		t.Errorf("children = %+v, want none", sel.Children)
	}
}
