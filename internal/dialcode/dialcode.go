// Package dialcode holds the fixed, name-sorted table of country calling
// codes offered by the phone field.
package dialcode

import (
	"sort"
	"strings"
)

// DefaultDialCode is the code a form starts with and the fallback used when
// a stored value no longer matches any entry.
const DefaultDialCode = "+91"

// Entry is a single country calling code.
// ISO is the unique key; DialCode is shared by some countries (e.g. "+1").
type Entry struct {
	DialCode string `json:"dial_code" yaml:"dial_code"`
	Name     string `json:"name" yaml:"name"`
	Flag     string `json:"flag" yaml:"flag"`
	ISO      string `json:"iso" yaml:"iso"`
}

// Label returns the "flag name (code)" form used in lists.
func (e Entry) Label() string {
	return e.Flag + " " + e.Name + " (" + e.DialCode + ")"
}

// table is sorted by Name once at init and never mutated afterwards.
var table = buildTable([]Entry{
	{DialCode: "+91", Name: "India", Flag: "🇮🇳", ISO: "IN"},
	{DialCode: "+1", Name: "United States", Flag: "🇺🇸", ISO: "US"},
	{DialCode: "+44", Name: "United Kingdom", Flag: "🇬🇧", ISO: "GB"},
	{DialCode: "+61", Name: "Australia", Flag: "🇦🇺", ISO: "AU"},
	{DialCode: "+49", Name: "Germany", Flag: "🇩🇪", ISO: "DE"},
	{DialCode: "+33", Name: "France", Flag: "🇫🇷", ISO: "FR"},
	{DialCode: "+81", Name: "Japan", Flag: "🇯🇵", ISO: "JP"},
	{DialCode: "+86", Name: "China", Flag: "🇨🇳", ISO: "CN"},
	{DialCode: "+971", Name: "UAE", Flag: "🇦🇪", ISO: "AE"},
	{DialCode: "+65", Name: "Singapore", Flag: "🇸🇬", ISO: "SG"},
	{DialCode: "+39", Name: "Italy", Flag: "🇮🇹", ISO: "IT"},
	{DialCode: "+31", Name: "Netherlands", Flag: "🇳🇱", ISO: "NL"},
	{DialCode: "+34", Name: "Spain", Flag: "🇪🇸", ISO: "ES"},
	{DialCode: "+41", Name: "Switzerland", Flag: "🇨🇭", ISO: "CH"},
	{DialCode: "+1", Name: "Canada", Flag: "🇨🇦", ISO: "CA"},
	{DialCode: "+7", Name: "Russia", Flag: "🇷🇺", ISO: "RU"},
	{DialCode: "+55", Name: "Brazil", Flag: "🇧🇷", ISO: "BR"},
	{DialCode: "+27", Name: "South Africa", Flag: "🇿🇦", ISO: "ZA"},
	{DialCode: "+82", Name: "South Korea", Flag: "🇰🇷", ISO: "KR"},
})

func buildTable(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted
}

// All returns a copy of the table, sorted by name.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Len returns the number of entries in the table.
func Len() int {
	return len(table)
}

// Filter returns the entries whose name, dial code or ISO code contains
// search, compared case-insensitively. Order follows the table.
// An empty search returns every entry.
func Filter(search string) []Entry {
	s := strings.ToLower(search)
	out := make([]Entry, 0, len(table))
	for _, e := range table {
		if Matches(e, s) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether e matches the (already lowercased) search text.
func Matches(e Entry, lowered string) bool {
	return strings.Contains(strings.ToLower(e.Name), lowered) ||
		strings.Contains(strings.ToLower(e.DialCode), lowered) ||
		strings.Contains(strings.ToLower(e.ISO), lowered)
}

// Lookup returns the first entry in name order with the given dial code.
// Shared codes therefore resolve deterministically ("+1" is Canada).
func Lookup(dialCode string) (Entry, bool) {
	for _, e := range table {
		if e.DialCode == dialCode {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve is Lookup with a fallback to DefaultDialCode.
func Resolve(dialCode string) Entry {
	if e, ok := Lookup(dialCode); ok {
		return e
	}
	e, _ := Lookup(DefaultDialCode)
	return e
}

// ByISO returns the entry with the given two-letter code (case-insensitive).
func ByISO(iso string) (Entry, bool) {
	for _, e := range table {
		if strings.EqualFold(e.ISO, iso) {
			return e, true
		}
	}
	return Entry{}, false
}

// Valid reports whether dialCode belongs to at least one entry.
func Valid(dialCode string) bool {
	_, ok := Lookup(dialCode)
	return ok
}
