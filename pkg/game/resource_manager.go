package game

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/pvz-setup/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

const (
	// defaultSVGSize SVG 没有声明尺寸时的栅格化边长
	defaultSVGSize = 64

	// DefaultResourceConfigPath 资源配置文件位置
	DefaultResourceConfigPath = "assets/config/resources.yaml"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for sprite images and font faces,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Images are read through the embedded package: SVG files are rasterized with
// oksvg/rasterx at the size declared in resources.yaml, PNG files are decoded.
// The UI font is the Go Regular TTF shipped with golang.org/x/image.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager()
//	if err := rm.LoadResourceConfig(DefaultResourceConfigPath); err != nil {
//	    log.Fatalf("Failed to load resource config: %v", err)
//	}
//	img := rm.ImageOrPlaceholder("IMAGE_PLANT_PEASHOOTER")
type ResourceManager struct {
	imageCache       map[string]*ebiten.Image   // path -> Image
	placeholderCache map[string]*ebiten.Image   // resource ID -> generated placeholder
	fontFaceCache    map[string]*text.GoTextFace // "goregular:size" -> face
	fontSource       *text.GoTextFaceSource      // 内置字体源，首次使用时创建

	// YAML resource configuration
	config      *ResourceConfig
	resourceMap map[string]ImageResource // Resource ID -> resolved definition (full path)
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:       make(map[string]*ebiten.Image),
		placeholderCache: make(map[string]*ebiten.Image),
		fontFaceCache:    make(map[string]*text.GoTextFace),
		resourceMap:      make(map[string]ImageResource),
	}
}

// LoadImage loads an image file from the embedded assets and caches it.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: 资源路径（如 "assets/images/plants/peashooter.svg"）
//   - width, height: SVG 栅格化尺寸，<= 0 时使用 defaultSVGSize
func (rm *ResourceManager) LoadImage(path string, width, height int) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, err := decodeImage(path, data, width, height)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// Returns nil if the image has not been loaded yet.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// decodeImage 按扩展名选择解码方式
func decodeImage(path string, data []byte, width, height int) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err := rasterizeSVG(data, width, height)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize SVG %s: %w", path, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// rasterizeSVG 把 SVG 数据栅格化为 width x height 的 RGBA 图像
func rasterizeSVG(data []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 {
		width = defaultSVGSize
	}
	if height <= 0 {
		height = defaultSVGSize
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// After loading, resources can be accessed by their IDs.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	if err := rm.ParseResourceConfig(data); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	log.Printf("[ResourceManager] Loaded resource config %s: %d groups, %d images",
		configPath, len(rm.config.Groups), len(rm.resourceMap))
	return nil
}

// ParseResourceConfig 解析 YAML 数据并重建资源ID索引
func (rm *ResourceManager) ParseResourceConfig(data []byte) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return err
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap creates a mapping from resource IDs to resolved definitions.
// 没有扩展名的路径默认为 PNG
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]ImageResource)
	if rm.config == nil {
		return
	}

	for groupName, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}

			if _, dup := rm.resourceMap[img.ID]; dup {
				log.Printf("[ResourceManager] Warning: duplicate resource ID %s in group %s", img.ID, groupName)
			}

			resolved := img
			resolved.Path = fullPath
			rm.resourceMap[img.ID] = resolved
		}
	}
}

// ResolvePath 返回资源ID对应的完整路径
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	res, ok := rm.resourceMap[resourceID]
	return res.Path, ok
}

// LoadImageByID loads an image using its resource ID from the YAML configuration.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	res, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(res.Path, res.Width, res.Height)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	path, exists := rm.ResolvePath(resourceID)
	if !exists {
		return nil
	}
	return rm.GetImage(path)
}

// ImageOrPlaceholder 返回已加载的图片；缺失时加载，加载失败则返回生成的占位图
// 占位图只在首次失败时记录日志
func (rm *ResourceManager) ImageOrPlaceholder(resourceID string) *ebiten.Image {
	if img := rm.GetImageByID(resourceID); img != nil {
		return img
	}
	if img, ok := rm.placeholderCache[resourceID]; ok {
		return img
	}

	img, err := rm.LoadImageByID(resourceID)
	if err == nil {
		return img
	}

	log.Printf("[ResourceManager] Using placeholder for %s: %v", resourceID, err)
	width, height := defaultSVGSize, defaultSVGSize
	if res, ok := rm.resourceMap[resourceID]; ok && res.Width > 0 && res.Height > 0 {
		width, height = res.Width, res.Height
	}
	placeholder := ebiten.NewImageFromImage(placeholderImage(resourceID, width, height))
	rm.placeholderCache[resourceID] = placeholder
	return placeholder
}

// placeholderImage 生成纯色占位图，颜色由资源ID决定（同一ID颜色固定），带深色边框
func placeholderImage(resourceID string, width, height int) *image.RGBA {
	h := fnv.New32a()
	h.Write([]byte(resourceID))
	sum := h.Sum32()
	fill := color.RGBA{
		R: uint8(96 + sum&0x7f),
		G: uint8(96 + (sum>>8)&0x7f),
		B: uint8(96 + (sum>>16)&0x7f),
		A: 255,
	}
	border := color.RGBA{40, 40, 40, 255}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				img.SetRGBA(x, y, border)
			} else {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// LoadResourceGroup loads all images in a specified group.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] Loaded group %s (%d images)", groupName, len(group.Images))
	return nil
}

// LoadDefaultFont 使用内置的 Go Regular 字体创建字体面
func (rm *ResourceManager) LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}
