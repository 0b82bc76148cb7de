// ABOUTME: Fuzzy search over a folder tree that opens the folders leading to each hit
// ABOUTME: Ranking comes from the fuzzy package; every match is revealed, not just the best

package layout

import "github.com/mauromedda/charflow-go/pkg/tui/fuzzy"

// entry is a flattened node together with the folders above it.
type entry struct {
	label     string
	ancestors []*Folder
}

type entries []entry

func (e entries) String(i int) string { return e[i].label }
func (e entries) Len() int            { return len(e) }

// Reveal opens every folder on the path to each label matching query and
// returns the number of matches. f itself is not searched.
func (f *Folder) Reveal(query string) int {
	if query == "" {
		return 0
	}
	all := f.flatten(nil, nil)
	matches := fuzzy.FindFrom(query, all)
	for _, m := range matches {
		for _, folder := range all[m.Index].ancestors {
			folder.Open = true
		}
	}
	return len(matches)
}

// Collapse closes f and every folder below it.
func (f *Folder) Collapse() {
	f.Open = false
	for _, child := range f.Children {
		if c, ok := child.(*Folder); ok {
			c.Collapse()
		}
	}
}

func (f *Folder) flatten(out entries, path []*Folder) entries {
	path = append(path[:len(path):len(path)], f)
	for _, child := range f.Children {
		out = append(out, entry{label: child.Label(), ancestors: path})
		if c, ok := child.(*Folder); ok {
			out = c.flatten(out, path)
		}
	}
	return out
}
