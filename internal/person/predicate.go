package person

import (
	"slices"
	"strings"
)

// Predicate decides whether a person belongs in a filtered view.
type Predicate interface {
	Test(p Person) bool
}

type showAll struct{}

func (showAll) Test(Person) bool { return true }

// ShowAll matches every person.
var ShowAll Predicate = showAll{}

// FindPredicate matches persons satisfying every name and tag keyword.
// Name keywords are case-insensitive substrings of the name. Tag keywords must
// equal one of the person's tags, ignoring case unless CaseSensitiveTags is set.
type FindPredicate struct {
	NameKeywords      []string
	TagKeywords       []string
	CaseSensitiveTags bool
}

func NewFindPredicate(names, tags []string, caseSensitiveTags bool) FindPredicate {
	return FindPredicate{
		NameKeywords:      append([]string(nil), names...),
		TagKeywords:       append([]string(nil), tags...),
		CaseSensitiveTags: caseSensitiveTags,
	}
}

func (f FindPredicate) Test(p Person) bool {
	name := strings.ToLower(p.Name)
	for _, kw := range f.NameKeywords {
		if !strings.Contains(name, strings.ToLower(kw)) {
			return false
		}
	}
	for _, kw := range f.TagKeywords {
		if !p.HasTag(kw, f.CaseSensitiveTags) {
			return false
		}
	}
	return true
}

func (f FindPredicate) Equal(other FindPredicate) bool {
	return f.CaseSensitiveTags == other.CaseSensitiveTags &&
		slices.Equal(f.NameKeywords, other.NameKeywords) &&
		slices.Equal(f.TagKeywords, other.TagKeywords)
}

func (f FindPredicate) String() string {
	var parts []string
	if f.CaseSensitiveTags {
		parts = append(parts, "c/")
	}
	for _, n := range f.NameKeywords {
		parts = append(parts, "n/"+n)
	}
	for _, t := range f.TagKeywords {
		parts = append(parts, "t/"+t)
	}
	return strings.Join(parts, " ")
}
