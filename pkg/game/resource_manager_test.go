package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/decker502/pvz-setup/pkg/embedded"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="#00ff00"/>
</svg>`

const testResourceYAML = `
version: "1.0"
base_path: assets
groups:
  plants:
    images:
      - id: IMAGE_PLANT_TEST
        path: images/plants/test.svg
        width: 32
        height: 32
      - id: IMAGE_PLANT_PNG
        path: images/plants/test
  zombies:
    images:
      - id: IMAGE_ZOMBIE_MISSING
        path: images/zombies/missing.svg
        width: 80
        height: 96
`

// setupTestAssets 用内存文件系统初始化 embedded
func setupTestAssets(t *testing.T) {
	t.Helper()

	var pngData bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := png.Encode(&pngData, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}

	assets := fstest.MapFS{
		"assets/config/resources.yaml":  {Data: []byte(testResourceYAML)},
		"assets/images/plants/test.svg": {Data: []byte(testSVG)},
		"assets/images/plants/test.png": {Data: pngData.Bytes()},
	}
	embedded.Init(assets, fstest.MapFS{})
	t.Cleanup(embedded.Reset)
}

func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager()
	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.imageCache == nil || rm.fontFaceCache == nil || rm.resourceMap == nil {
		t.Error("Expected caches to be initialized")
	}
}

func TestLoadResourceConfig(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()

	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	if rm.config.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", rm.config.BasePath)
	}

	tests := []struct {
		id   string
		path string
	}{
		{"IMAGE_PLANT_TEST", "assets/images/plants/test.svg"},
		{"IMAGE_PLANT_PNG", "assets/images/plants/test.png"},
		{"IMAGE_ZOMBIE_MISSING", "assets/images/zombies/missing.svg"},
	}
	for _, tt := range tests {
		path, ok := rm.ResolvePath(tt.id)
		if !ok {
			t.Errorf("Expected %s to be mapped", tt.id)
			continue
		}
		if path != tt.path {
			t.Errorf("%s: expected path %s, got %s", tt.id, tt.path, path)
		}
	}
}

func TestLoadResourceConfigMissingFile(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()

	if err := rm.LoadResourceConfig("assets/config/nope.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestParseResourceConfigInvalidYAML(t *testing.T) {
	rm := NewResourceManager()
	if err := rm.ParseResourceConfig([]byte("groups: [unclosed")); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadImageByIDErrors(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()

	if _, err := rm.LoadImageByID("IMAGE_PLANT_TEST"); err == nil {
		t.Error("Expected error when loading image without config")
	}

	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	if _, err := rm.LoadImageByID("NON_EXISTENT_ID"); err == nil {
		t.Error("Expected error when loading non-existent resource ID")
	}
	if _, err := rm.LoadImageByID("IMAGE_ZOMBIE_MISSING"); err == nil {
		t.Error("Expected error when the image file is missing")
	}
}

func TestGetImageByIDNotLoaded(t *testing.T) {
	rm := NewResourceManager()
	if rm.GetImageByID("IMAGE_PLANT_TEST") != nil {
		t.Error("Expected nil when getting image without config")
	}
}

func TestLoadResourceGroupUnknown(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()
	if err := rm.LoadResourceGroup("plants"); err == nil {
		t.Error("Expected error without config")
	}
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	if err := rm.LoadResourceGroup("lawn"); err == nil {
		t.Error("Expected error for unknown group")
	}
}

func TestRasterizeSVG(t *testing.T) {
	img, err := rasterizeSVG([]byte(testSVG), 32, 16)
	if err != nil {
		t.Fatalf("rasterizeSVG failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("Expected 32x16, got %dx%d", b.Dx(), b.Dy())
	}

	c := img.RGBAAt(16, 8)
	if c.G < 200 || c.R > 50 || c.B > 50 {
		t.Errorf("Expected green fill at center, got %+v", c)
	}
}

func TestRasterizeSVGDefaultSize(t *testing.T) {
	img, err := rasterizeSVG([]byte(testSVG), 0, 0)
	if err != nil {
		t.Fatalf("rasterizeSVG failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != defaultSVGSize || b.Dy() != defaultSVGSize {
		t.Errorf("Expected default size %d, got %dx%d", defaultSVGSize, b.Dx(), b.Dy())
	}
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 7, 5))
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}

	img, err := decodeImage("x/test.png", buf.Bytes(), 0, 0)
	if err != nil {
		t.Fatalf("decodeImage PNG failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Errorf("Expected 7x5, got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := decodeImage("x/broken.png", []byte("not a png"), 0, 0); err == nil {
		t.Error("Expected error for corrupted PNG")
	}

	img, err = decodeImage("x/TEST.SVG", []byte(testSVG), 12, 12)
	if err != nil {
		t.Fatalf("decodeImage SVG failed: %v", err)
	}
	if img.Bounds().Dx() != 12 {
		t.Errorf("Expected SVG rasterized to width 12, got %d", img.Bounds().Dx())
	}
}

func TestPlaceholderImage(t *testing.T) {
	a := placeholderImage("IMAGE_PLANT_A", 20, 10)
	if b := a.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("Expected 20x10, got %dx%d", b.Dx(), b.Dy())
	}

	border := color.RGBA{40, 40, 40, 255}
	if a.RGBAAt(0, 0) != border || a.RGBAAt(19, 9) != border {
		t.Error("Expected dark border")
	}

	// 同一ID颜色固定
	again := placeholderImage("IMAGE_PLANT_A", 20, 10)
	if a.RGBAAt(5, 5) != again.RGBAAt(5, 5) {
		t.Error("Expected placeholder color to be stable for the same ID")
	}
	if a.RGBAAt(5, 5).A != 255 {
		t.Error("Expected opaque fill")
	}
}

func TestLoadDefaultFont(t *testing.T) {
	rm := NewResourceManager()

	face, err := rm.LoadDefaultFont(16)
	if err != nil {
		t.Fatalf("LoadDefaultFont failed: %v", err)
	}
	if face.Size != 16 {
		t.Errorf("Expected size 16, got %.1f", face.Size)
	}

	cached, _ := rm.LoadDefaultFont(16)
	if cached != face {
		t.Error("Expected cached face for the same size")
	}

	other, _ := rm.LoadDefaultFont(28)
	if other == face || other.Source != face.Source {
		t.Error("Expected a new face sharing the same source")
	}
}
