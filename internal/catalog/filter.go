package catalog

import "strings"

type FilterOptions struct {
	Categories []string
	FreeWords  string
}

// Filter keeps the requested categories and, within them, entries whose slug,
// key or title contain every free word (case-insensitive). Categories left
// with no entries are dropped.
func Filter(categories []Category, opt FilterOptions) []Category {
	words := strings.Fields(strings.ToLower(opt.FreeWords))

	var out []Category
	for _, c := range categories {
		if len(opt.Categories) > 0 && !contains(opt.Categories, c.Slug) {
			continue
		}
		if len(words) == 0 {
			out = append(out, c)
			continue
		}
		kept := c
		kept.Images = nil
		for _, e := range c.Images {
			if matchesAll(e, words) {
				kept.Images = append(kept.Images, e)
			}
		}
		if len(kept.Images) > 0 {
			out = append(out, kept)
		}
	}
	return out
}

func matchesAll(e Entry, words []string) bool {
	hay := strings.ToLower(e.Slug + " " + e.Key + " " + e.Title)
	for _, w := range words {
		if !strings.Contains(hay, w) {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
