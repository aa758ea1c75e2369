package parser

import "strings"

type Prefix string

const (
	PrefixCaseSensitive Prefix = "c/"
	PrefixName          Prefix = "n/"
	PrefixTag           Prefix = "t/"
)

// ArgumentMultimap holds the values of each prefix in the order they were typed.
type ArgumentMultimap struct {
	Preamble string
	values   map[Prefix][]string
	order    []Prefix
}

func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

// Order returns the prefixes in the order they appeared, repeats included.
func (a ArgumentMultimap) Order() []Prefix {
	return append([]Prefix(nil), a.order...)
}

// Tokenize splits args on whitespace. A word starting with one of prefixes
// opens a new value; following plain words are appended to it. Words before
// the first prefix form the preamble.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	out := ArgumentMultimap{values: map[Prefix][]string{}}
	var preamble []string
	var cur Prefix
	var buf []string
	flush := func() {
		if cur == "" {
			return
		}
		out.values[cur] = append(out.values[cur], strings.Join(buf, " "))
		buf = nil
	}
	for _, w := range strings.Fields(args) {
		if p, ok := matchPrefix(w, prefixes); ok {
			flush()
			cur = p
			out.order = append(out.order, p)
			if rest := strings.TrimPrefix(w, string(p)); rest != "" {
				buf = append(buf, rest)
			}
			continue
		}
		if cur == "" {
			preamble = append(preamble, w)
			continue
		}
		buf = append(buf, w)
	}
	flush()
	out.Preamble = strings.Join(preamble, " ")
	return out
}

func matchPrefix(word string, prefixes []Prefix) (Prefix, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(word, string(p)) {
			return p, true
		}
	}
	return "", false
}
