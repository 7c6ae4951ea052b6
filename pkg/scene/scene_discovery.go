package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// BuiltinScenes lists the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Four spheres and a mirror ball on a grey ground sphere",
			Type:        "builtin",
		},
	}
}

// FindScenesDir returns the first existing scenes directory, or "" if none
func FindScenesDir() string {
	// Try different possible paths for scenes directory
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListScenes scans dir for JSON scene files. Files whose header cannot be
// read are reported to the logger and skipped.
func ListScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			if logger != nil {
				logger.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			}
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	// Sort scenes by name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ListAllScenes returns the builtin scenes followed by the scene files in dir.
// A file whose ID matches a builtin is skipped because ResolveScene never
// reaches it by name.
func ListAllScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	files, err := ListScenes(dir, logger)
	if err != nil {
		return nil, err
	}

	builtins := BuiltinScenes()
	builtinIDs := make(map[string]bool, len(builtins))
	for _, info := range builtins {
		builtinIDs[info.ID] = true
	}

	all := builtins
	for _, info := range files {
		if builtinIDs[info.ID] {
			if logger != nil {
				logger.Printf("Warning: %s is shadowed by the builtin scene %q\n", info.FilePath, info.ID)
			}
			continue
		}
		all = append(all, info)
	}
	return all, nil
}

// ParseSceneMetadata reads the name and description of a scene file without
// building its spheres
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	sceneInfo := SceneInfo{
		ID:       nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "json",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return sceneInfo, err
	}
	if header.Name != "" {
		sceneInfo.Name = header.Name
	}
	sceneInfo.Description = header.Description

	return sceneInfo, nil
}

// ResolveScene finds a scene by builtin ID, file path or file name in the
// scenes directory
func ResolveScene(name string) (*Scene, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("scene name must not be empty")
	case name == "default":
		return NewDefaultScene(), nil
	case strings.HasSuffix(name, ".json"):
		return LoadScene(name)
	}

	dir := FindScenesDir()
	if dir == "" {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	path := filepath.Join(dir, name+".json")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return LoadScene(path)
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-row" -> "Mirror Row"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
