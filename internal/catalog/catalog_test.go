package catalog

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifests(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"b_zwierzeta.json": `{"category_slug":"zwierzeta","category_title":"Zwierzęta","images":[
			{"slug":"kot","key":"cat","title":"Kot w kapeluszu"},
			{"slug":"pies","key":"dog","title":"Pies"},
			{"slug":"","key":"draft","title":"Szkic"}]}`,
		"a_dni.json":  `{"category_slug":"dzien-piegow","images":[{"slug":"lupa","key":"magnifier","title":"Lupa"}]}`,
		"c_skip.json": `{"category_title":"no slug","images":[{"slug":"x"}]}`,
		"notes.txt":   `ignored`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoadCategoriesFromDir(t *testing.T) {
	all, err := LoadCategoriesFromDir(writeManifests(t))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "dzien-piegow", all[0].Slug)
	assert.Equal(t, "zwierzeta", all[1].Slug)
	assert.Equal(t, "Zwierzęta", all[1].Title)
	assert.Len(t, all[1].Images, 3)
}

func TestLoadCategoriesFromDirBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	_, err := LoadCategoriesFromDir(dir)
	assert.Error(t, err)
}

func TestAllURLs(t *testing.T) {
	all, err := LoadCategoriesFromDir(writeManifests(t))
	require.NoError(t, err)

	urls := AllURLs(all, []string{"/kontakt/"})
	assert.Equal(t, []string{
		"/",
		"/kontakt/",
		"/dzien-piegow/",
		"/dzien-piegow/lupa/",
		"/zwierzeta/",
		"/zwierzeta/kot/",
		"/zwierzeta/pies/",
	}, urls)
}

func TestSampleURLs(t *testing.T) {
	all, err := LoadCategoriesFromDir(writeManifests(t))
	require.NoError(t, err)

	a := SampleURLs(all, rand.New(rand.NewSource(3)))
	b := SampleURLs(all, rand.New(rand.NewSource(3)))
	assert.Equal(t, a, b)
	require.Len(t, a, 3)
	assert.Equal(t, "/", a[0])
	assert.Contains(t, []string{"/dzien-piegow/", "/zwierzeta/"}, a[1])
	assert.Contains(t, []string{"/dzien-piegow/lupa", "/zwierzeta/kot", "/zwierzeta/pies"}, a[2])

	assert.Equal(t, []string{"/"}, SampleURLs(nil, rand.New(rand.NewSource(1))))
}

func TestFilter(t *testing.T) {
	all, err := LoadCategoriesFromDir(writeManifests(t))
	require.NoError(t, err)

	tests := []struct {
		name      string
		opt       FilterOptions
		wantSlugs []string
		wantPages int
	}{
		{name: "no filter", opt: FilterOptions{}, wantSlugs: []string{"dzien-piegow", "zwierzeta"}, wantPages: 4},
		{name: "by category", opt: FilterOptions{Categories: []string{"zwierzeta"}}, wantSlugs: []string{"zwierzeta"}, wantPages: 3},
		{name: "free words", opt: FilterOptions{FreeWords: "KOT kapeluszu"}, wantSlugs: []string{"zwierzeta"}, wantPages: 1},
		{name: "no match", opt: FilterOptions{FreeWords: "dinozaur"}, wantSlugs: nil, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Filter(all, tt.opt)
			var slugs []string
			pages := 0
			for _, c := range out {
				slugs = append(slugs, c.Slug)
				pages += len(c.Images)
			}
			assert.Equal(t, tt.wantSlugs, slugs)
			assert.Equal(t, tt.wantPages, pages)
		})
	}
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://example.com/zwierzeta/kot/", PageURL("https://example.com/", "/zwierzeta/kot/"))
	assert.Equal(t, "https://example.com/", PageURL("https://example.com", "/"))
}
