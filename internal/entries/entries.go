package entries

import "sort"

// Entry is a named shell command. Names need not be unique.
type Entry struct {
	Name    string
	Command string
	Group   string
}

// List is the ordered, read-only set of entries loaded at startup.
type List struct {
	entries []Entry
}

func New(raw []Entry) *List {
	cp := make([]Entry, len(raw))
	copy(cp, raw)
	return &List{entries: cp}
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

func (l *List) At(i int) Entry {
	return l.entries[i]
}

// String returns the name at i. It lets a List act as a fuzzy.Source.
func (l *List) String(i int) string {
	return l.entries[i].Name
}

func (l *List) Empty() bool {
	return l.Len() == 0
}

// Groups returns group names in first-seen order. The ungrouped bucket is "".
func (l *List) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, e := range l.entries {
		if !seen[e.Group] {
			seen[e.Group] = true
			groups = append(groups, e.Group)
		}
	}
	return groups
}

// Sorted returns a copy ordered by group name, then entry name.
func (l *List) Sorted() *List {
	out := New(l.entries)
	sort.SliceStable(out.entries, func(i, j int) bool {
		a, b := out.entries[i], out.entries[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Name < b.Name
	})
	return out
}
