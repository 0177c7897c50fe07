package catalog

// Category is one content manifest: a category page and its coloring pages.
type Category struct {
	Slug        string  `json:"category_slug"`
	Title       string  `json:"category_title"`
	Description string  `json:"category_description"`
	Images      []Entry `json:"images"`
}

type Entry struct {
	Slug        string `json:"slug"`
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
