package config

import (
	"fmt"
	"os"

	"github.com/decker502/pvz-setup/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ZombieCatalogSize 僵尸图鉴固定为 4 条
const ZombieCatalogSize = 4

// 默认图鉴路径
const (
	DefaultPlantCatalogPath  = "data/plants.yaml"
	DefaultZombieCatalogPath = "data/zombies.yaml"
)

// readCatalogFile 读取图鉴文件
// "assets/"、"data/" 开头的路径从嵌入资源读取，其他路径从本地文件系统读取
func readCatalogFile(path string) ([]byte, error) {
	if embedded.IsEmbeddedPath(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// PlantEntry 植物图鉴条目（只读）
type PlantEntry struct {
	ID    string `yaml:"id"`    // 图鉴ID，也是实例ID前缀
	Name  string `yaml:"name"`  // 显示名称
	Role  string `yaml:"role"`  // 定位描述（如 "Attacker"）
	Image string `yaml:"image"` // 资源ID，见 assets/config/resources.yaml
}

// PlantCatalog 植物图鉴文件结构
type PlantCatalog struct {
	Plants []PlantEntry `yaml:"plants"`
}

// ZombieEntry 僵尸图鉴条目，仅用于 Reveal 阶段展示
type ZombieEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// ZombieCatalog 僵尸图鉴文件结构
type ZombieCatalog struct {
	Zombies []ZombieEntry `yaml:"zombies"`
}

// LoadPlantCatalog 加载植物图鉴（嵌入资源或本地文件）
func LoadPlantCatalog(path string) (*PlantCatalog, error) {
	data, err := readCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plant catalog %s: %w", path, err)
	}

	catalog, err := ParsePlantCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid plant catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParsePlantCatalog 解析并验证植物图鉴 YAML
func ParsePlantCatalog(data []byte) (*PlantCatalog, error) {
	var catalog PlantCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse plant catalog YAML: %w", err)
	}

	if err := validatePlantCatalog(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// validatePlantCatalog 验证植物图鉴的完整性
func validatePlantCatalog(catalog *PlantCatalog) error {
	if len(catalog.Plants) == 0 {
		return fmt.Errorf("at least one plant is required")
	}

	seen := make(map[string]bool, len(catalog.Plants))
	for i, plant := range catalog.Plants {
		if plant.ID == "" {
			return fmt.Errorf("plant #%d: id is required", i)
		}
		if seen[plant.ID] {
			return fmt.Errorf("plant %s: duplicate id", plant.ID)
		}
		seen[plant.ID] = true

		if plant.Name == "" {
			return fmt.Errorf("plant %s: name is required", plant.ID)
		}
		if plant.Image == "" {
			return fmt.Errorf("plant %s: image is required", plant.ID)
		}
	}
	return nil
}

// Len 返回图鉴条目数
func (c *PlantCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Plants)
}

// At 返回第 i 条图鉴条目
func (c *PlantCatalog) At(i int) PlantEntry {
	return c.Plants[i]
}

// LoadZombieCatalog 加载僵尸图鉴（嵌入资源或本地文件）
func LoadZombieCatalog(path string) (*ZombieCatalog, error) {
	data, err := readCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie catalog %s: %w", path, err)
	}

	catalog, err := ParseZombieCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid zombie catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseZombieCatalog 解析并验证僵尸图鉴 YAML
func ParseZombieCatalog(data []byte) (*ZombieCatalog, error) {
	var catalog ZombieCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse zombie catalog YAML: %w", err)
	}

	if err := validateZombieCatalog(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// validateZombieCatalog 验证僵尸图鉴：固定 4 条，ID 唯一
func validateZombieCatalog(catalog *ZombieCatalog) error {
	if len(catalog.Zombies) != ZombieCatalogSize {
		return fmt.Errorf("exactly %d zombies are required, got %d", ZombieCatalogSize, len(catalog.Zombies))
	}

	seen := make(map[string]bool, len(catalog.Zombies))
	for i, zombie := range catalog.Zombies {
		if zombie.ID == "" {
			return fmt.Errorf("zombie #%d: id is required", i)
		}
		if seen[zombie.ID] {
			return fmt.Errorf("zombie %s: duplicate id", zombie.ID)
		}
		seen[zombie.ID] = true

		if zombie.Name == "" {
			return fmt.Errorf("zombie %s: name is required", zombie.ID)
		}
		if zombie.Image == "" {
			return fmt.Errorf("zombie %s: image is required", zombie.ID)
		}
	}
	return nil
}
