package dialcode

import (
	"strings"
	"testing"
)

func TestAllSortedByName(t *testing.T) {
	all := All()
	if len(all) != 19 {
		t.Fatalf("len(All()) = %d, want 19", len(all))
	}
	for i := 1; i < len(all); i++ {
		if strings.ToLower(all[i-1].Name) > strings.ToLower(all[i].Name) {
			t.Errorf("entries out of order: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "Mutated"

	if All()[0].Name == "Mutated" {
		t.Error("All() exposed the internal table")
	}
}

func TestISOUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range All() {
		if seen[e.ISO] {
			t.Errorf("duplicate ISO code %s", e.ISO)
		}
		seen[e.ISO] = true
		if len(e.ISO) != 2 {
			t.Errorf("ISO %q is not two letters", e.ISO)
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		search string
		want   []string // ISO codes, in table order
	}{
		{"", nil},
		{"ind", []string{"IN"}},
		{"IND", []string{"IN"}},
		{"+1", []string{"CA", "US"}},
		{"us", []string{"AU", "RU", "US"}},
		{"gb", []string{"GB"}},
		{"south", []string{"ZA", "KR"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := Filter(tt.search)
			if tt.want == nil {
				if len(got) != Len() {
					t.Fatalf("Filter(%q) returned %d entries, want all %d", tt.search, len(got), Len())
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want ISO %v", tt.search, got, tt.want)
			}
			for i, iso := range tt.want {
				if got[i].ISO != iso {
					t.Errorf("Filter(%q)[%d].ISO = %s, want %s", tt.search, i, got[i].ISO, iso)
				}
			}
		})
	}
}

func TestFilterSubsetAndMatchRule(t *testing.T) {
	searches := []string{"a", "A", "+", "+9", "in", "ia", "1", "e", "KOR", " ", "united", "ae"}
	index := make(map[string]Entry)
	for _, e := range All() {
		index[e.ISO] = e
	}

	for _, s := range searches {
		for _, e := range Filter(s) {
			orig, ok := index[e.ISO]
			if !ok || orig != e {
				t.Errorf("Filter(%q) returned %v which is not in the table", s, e)
			}
			lowered := strings.ToLower(s)
			if !strings.Contains(strings.ToLower(e.Name), lowered) &&
				!strings.Contains(strings.ToLower(e.DialCode), lowered) &&
				!strings.Contains(strings.ToLower(e.ISO), lowered) {
				t.Errorf("Filter(%q) returned non-matching entry %v", s, e)
			}
		}
	}
}

func TestLookupSharedCodeResolvesInNameOrder(t *testing.T) {
	e, ok := Lookup("+1")
	if !ok {
		t.Fatal("Lookup(+1) not found")
	}
	if e.ISO != "CA" {
		t.Errorf("Lookup(+1).ISO = %s, want CA (first in name order)", e.ISO)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	if got := Resolve("+999"); got.DialCode != DefaultDialCode || got.ISO != "IN" {
		t.Errorf("Resolve(+999) = %v, want India", got)
	}
	if got := Resolve("+44"); got.ISO != "GB" {
		t.Errorf("Resolve(+44) = %v, want GB", got)
	}
}

func TestByISO(t *testing.T) {
	e, ok := ByISO("us")
	if !ok || e.Name != "United States" {
		t.Errorf("ByISO(us) = %v, %v", e, ok)
	}
	if _, ok := ByISO("XX"); ok {
		t.Error("ByISO(XX) should not match")
	}
}

func TestLabel(t *testing.T) {
	e, _ := ByISO("JP")
	if got := e.Label(); got != "🇯🇵 Japan (+81)" {
		t.Errorf("Label() = %q", got)
	}
}
