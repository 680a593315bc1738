package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIFonts 界面使用的各级字体
type UIFonts struct {
	Title *text.GoTextFace
	Stats *text.GoTextFace
	Label *text.GoTextFace
	Small *text.GoTextFace
}

// SpriteSource 按资源ID提供图片，*game.ResourceManager 满足该接口
type SpriteSource interface {
	ImageOrPlaceholder(resourceID string) *ebiten.Image
}

// TextSource 按键提供界面文本，*game.LawnStrings 满足该接口
type TextSource interface {
	GetString(key string) string
}

// 配色
var (
	colorBackground    = color.RGBA{34, 52, 30, 255}
	colorLawnLight     = color.RGBA{96, 160, 64, 255}
	colorLawnDark      = color.RGBA{84, 146, 56, 255}
	colorCellOccupied  = color.RGBA{140, 190, 90, 255}
	colorCellBorder    = color.RGBA{50, 90, 36, 255}
	colorPanel         = color.RGBA{58, 44, 30, 235}
	colorPanelBorder   = color.RGBA{120, 92, 60, 255}
	colorBenchHighlite = color.RGBA{250, 220, 90, 255}
	colorCard          = color.RGBA{236, 224, 190, 255}
	colorCardBorder    = color.RGBA{150, 120, 80, 255}
	colorTextLight     = color.RGBA{250, 246, 230, 255}
	colorTextDark      = color.RGBA{48, 36, 24, 255}
	colorTextMuted     = color.RGBA{200, 190, 160, 255}
	colorDebugText     = color.RGBA{255, 255, 255, 160}
	colorTransparent   = color.RGBA{}
)

// drawSpriteFit 把图片等比缩放到 size x size 的方框内并居中绘制
func drawSpriteFit(screen, img *ebiten.Image, x, y, size float64, alpha float32) {
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	if w == 0 || h == 0 {
		return
	}

	scale := min(size/w, size/h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(size-w*scale)/2, y+(size-h*scale)/2)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawText 在 (x, y) 处绘制左上对齐的文字
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextCentered 以 (cx, cy) 为中心绘制文字
func drawTextCentered(screen *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawPanelRect 绘制带边框的矩形
func drawPanelRect(screen *ebiten.Image, x, y, w, h float64, fill, border color.Color, borderWidth float32) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)
	if borderWidth > 0 {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), borderWidth, border, true)
	}
}
