package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// Caption 非空时在图像下方居中显示
type SpriteComponent struct {
	Image   *ebiten.Image
	Width   float64
	Height  float64
	Caption string
}
