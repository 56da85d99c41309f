package views

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/nicobailon/qr/internal/entries"
	"github.com/sahilm/fuzzy"
)

type MatchMode int

const (
	MatchSubstring MatchMode = iota
	MatchPrefix
	MatchFuzzy
)

func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "", "substring":
		return MatchSubstring, nil
	case "prefix":
		return MatchPrefix, nil
	case "fuzzy":
		return MatchFuzzy, nil
	}
	return MatchSubstring, fmt.Errorf("unknown match mode %q (want substring, prefix or fuzzy)", s)
}

func (m MatchMode) String() string {
	switch m {
	case MatchPrefix:
		return "prefix"
	case MatchFuzzy:
		return "fuzzy"
	}
	return "substring"
}

// FilterOptions selects the match policy. Fuzzy matching always folds case.
type FilterOptions struct {
	Mode          MatchMode
	CaseSensitive bool
}

// Filter returns the indices of entries whose name matches query, in list
// order. An empty query matches everything.
func Filter(list *entries.List, query string, opts FilterOptions) []int {
	n := list.Len()
	if query == "" {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}
	if opts.Mode == MatchFuzzy {
		matches := fuzzy.FindFrom(query, list)
		out := make([]int, 0, len(matches))
		for _, m := range matches {
			out = append(out, m.Index)
		}
		sort.Ints(out)
		return out
	}
	q := []rune(query)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if matchAt([]rune(list.At(i).Name), q, opts) >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// Highlight returns the rune positions in name that query matched.
func Highlight(name, query string, opts FilterOptions) []int {
	if query == "" {
		return nil
	}
	if opts.Mode == MatchFuzzy {
		matches := fuzzy.Find(query, []string{name})
		if len(matches) == 0 {
			return nil
		}
		return runeOffsets(name, matches[0].MatchedIndexes)
	}
	q := []rune(query)
	start := matchAt([]rune(name), q, opts)
	if start < 0 {
		return nil
	}
	pos := make([]int, len(q))
	for i := range pos {
		pos[i] = start + i
	}
	return pos
}

// runeOffsets converts byte offsets into name to rune positions.
func runeOffsets(name string, offsets []int) []int {
	pos := make([]int, 0, len(offsets))
	for _, off := range offsets {
		if off < 0 || off > len(name) {
			continue
		}
		pos = append(pos, utf8.RuneCountInString(name[:off]))
	}
	return pos
}

func matchAt(name, q []rune, opts FilterOptions) int {
	fold := !opts.CaseSensitive
	if opts.Mode == MatchPrefix {
		if len(q) > len(name) || indexRunes(name[:len(q)], q, fold) != 0 {
			return -1
		}
		return 0
	}
	return indexRunes(name, q, fold)
}

// indexRunes is strings.Index over runes, optionally folding case rune by
// rune so that offsets stay valid for highlighting.
func indexRunes(s, sub []rune, fold bool) int {
	if len(sub) == 0 {
		return 0
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		match := true
		for j, r := range sub {
			c := s[i+j]
			if fold {
				c, r = unicode.ToLower(c), unicode.ToLower(r)
			}
			if c != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
