package catalog

import (
	"math/rand"
	"strings"
)

// AllURLs lists the site paths: the home page, static pages, then every
// category index followed by its image pages.
func AllURLs(categories []Category, staticPages []string) []string {
	urls := []string{"/"}
	urls = append(urls, staticPages...)
	for _, c := range categories {
		urls = append(urls, "/"+c.Slug+"/")
		for _, e := range c.Images {
			if e.Slug == "" {
				continue
			}
			urls = append(urls, "/"+c.Slug+"/"+e.Slug+"/")
		}
	}
	return urls
}

// SampleURLs returns the home page plus one random category index and one
// random image page, for quick smoke checks.
func SampleURLs(categories []Category, rng *rand.Rand) []string {
	urls := []string{"/"}
	if len(categories) == 0 {
		return urls
	}
	c := categories[rng.Intn(len(categories))]
	urls = append(urls, "/"+c.Slug+"/")

	var images []string
	for _, cat := range categories {
		for _, e := range cat.Images {
			if e.Slug != "" {
				images = append(images, "/"+cat.Slug+"/"+e.Slug)
			}
		}
	}
	if len(images) > 0 {
		urls = append(urls, images[rng.Intn(len(images))])
	}
	return urls
}

// PageURL joins a catalog path onto the site base URL.
func PageURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
