package systems

import (
	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/decker502/pvz-setup/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// ZombieLaneRenderSystem Reveal 阶段的僵尸展示
// 静态绘制僵尸图鉴中的全部僵尸（无动画、无移动）
type ZombieLaneRenderSystem struct {
	entityManager *ecs.EntityManager
	strings       TextSource
	fonts         UIFonts
}

// NewZombieLaneRenderSystem 创建僵尸展示渲染系统
func NewZombieLaneRenderSystem(em *ecs.EntityManager, strings TextSource, fonts UIFonts) *ZombieLaneRenderSystem {
	return &ZombieLaneRenderSystem{
		entityManager: em,
		strings:       strings,
		fonts:         fonts,
	}
}

// Draw 绘制标题和全部僵尸
func (s *ZombieLaneRenderSystem) Draw(screen *ebiten.Image) {
	drawText(screen, s.strings.GetString("ZOMBIE_LANE_TITLE"), s.fonts.Stats,
		config.ZombieLaneX, config.ZombieLaneY-32, colorTextLight)

	for _, entityID := range s.laneEntities() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID)

		if sprite.Image != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sprite.Width/float64(sprite.Image.Bounds().Dx()), sprite.Height/float64(sprite.Image.Bounds().Dy()))
			op.GeoM.Translate(pos.X, pos.Y)
			screen.DrawImage(sprite.Image, op)
		}
		drawText(screen, sprite.Caption, s.fonts.Label, pos.X+sprite.Width+12, pos.Y+sprite.Height/2-8, colorTextLight)
	}
}

// laneEntities 按展示顺序返回僵尸实体
func (s *ZombieLaneRenderSystem) laneEntities() []ecs.EntityID {
	return ecs.GetEntitiesWith3[*entities.ZombieLaneMarker, *components.PositionComponent, *components.SpriteComponent](s.entityManager)
}
