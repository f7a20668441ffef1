package assets

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// TextureMap maps sprite sheet ids to paths understood by a LoadFunc.
type TextureMap map[string]string

// LoadTextureMap reads a YAML document of `id: path` pairs.
func LoadTextureMap(fsys fs.FS, path string) (TextureMap, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}

	var m TextureMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: unmarshal %s: %w", path, err)
	}
	if m == nil {
		m = TextureMap{}
	}
	return m, nil
}
