package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListSceneFiles scans dir for TOML scene files. A missing directory yields
// an empty list.
func ListSceneFiles(dir string) ([]Info, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("scene: scanning %s: %w", dir, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("scene: scanning %s: %w", dir, err)
	}

	scenes := make([]Info, 0, len(files))
	for _, path := range files {
		info, err := readSceneHeader(path)
		if err != nil {
			logger.Warningf("skipping %s: %v", path, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// readSceneHeader names a scene file after its base name and takes the
// description from its leading comment lines
func readSceneHeader(path string) (Info, error) {
	info := Info{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
	}

	file, err := os.Open(path)
	if err != nil {
		return info, err
	}
	defer file.Close()

	var description []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}
		if text := strings.TrimSpace(strings.TrimPrefix(line, "#")); text != "" {
			description = append(description, text)
		}
	}
	info.Description = strings.Join(description, " ")

	return info, scanner.Err()
}
