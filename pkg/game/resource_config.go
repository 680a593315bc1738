package game

import "strings"

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup 一组一起加载的图片资源（如 "plants"、"zombies"）
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "IMAGE_PLANT_PEASHOOTER")
//   - Path: Relative path from base_path; ".svg" files are rasterized, others decoded
//   - Width/Height: 栅格化尺寸，只对 SVG 有效（0 使用默认尺寸）
//
// Example:
//
//	- id: IMAGE_ZOMBIE_WALKER
//	  path: images/zombies/walker.svg
//	  width: 80
//	  height: 96
type ImageResource struct {
	ID     string `yaml:"id"`
	Path   string `yaml:"path"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// buildFullPath constructs the full file path for a resource.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/plants/peashooter.svg")
//
// Returns:
//   - The full file path (e.g., "assets/images/plants/peashooter.svg")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return strings.TrimSuffix(basePath, "/") + "/" + strings.TrimPrefix(relativePath, "/")
}
