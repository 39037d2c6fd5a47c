package table

import (
	"strconv"
	"strings"
)

// Normalize turns header text into a column key: split on single spaces,
// lower-case each token, join with underscores.
func Normalize(name string) string {
	words := strings.Split(name, " ")
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// Dedupe makes column names unique. The first occurrence of a name is kept; each later
// occurrence becomes "{n}/{name}" for the least n >= 0 not already present.
func Dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	taken := make(map[string]bool, len(names))

	for _, name := range names {
		if !taken[name] {
			taken[name] = true
			out = append(out, name)
			continue
		}

		n := 0
		for taken[strconv.Itoa(n)+"/"+name] {
			n++
		}
		unique := strconv.Itoa(n) + "/" + name
		taken[unique] = true
		out = append(out, unique)
	}

	return out
}
