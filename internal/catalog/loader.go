package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/youruser/colorpages/internal/util"
)

// LoadCategoriesFromDir reads every *.json manifest in dir in filename order.
// Manifests without a category slug are skipped.
func LoadCategoriesFromDir(dir string) ([]Category, error) {
	files, err := util.ListFiles(dir, "", ".json")
	if err != nil {
		return nil, err
	}

	var all []Category
	for _, name := range files {
		c, err := loadManifest(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		if c.Slug == "" {
			continue
		}
		all = append(all, c)
	}
	return all, nil
}

func loadManifest(path string) (Category, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Category{}, err
	}
	defer fp.Close()

	var c Category
	if err := json.NewDecoder(fp).Decode(&c); err != nil {
		return Category{}, err
	}
	return c, nil
}
