package entities

import (
	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageProvider 按资源ID提供图片，*game.ResourceManager 满足该接口
type ImageProvider interface {
	ImageOrPlaceholder(resourceID string) *ebiten.Image
}

// ZombieLaneMarker 标记僵尸展示实体，区别于其他带精灵的实体
type ZombieLaneMarker struct {
	// Order 在展示列中的位置（从 0 开始）
	Order int
}

// NewZombieLane 为僵尸图鉴中的每个僵尸创建展示实体，纵向排列在控制面板位置
//
// 参数：
//   - em: 实体管理器
//   - images: 图片提供者
//   - zombies: 僵尸图鉴条目（按展示顺序）
//
// 返回：
//   - 创建的实体ID（与 zombies 顺序一致）
func NewZombieLane(em *ecs.EntityManager, images ImageProvider, zombies []config.ZombieEntry) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(zombies))
	for i, zombie := range zombies {
		entity := em.CreateEntity()

		ecs.AddComponent(em, entity, &components.PositionComponent{
			X: config.ZombieLaneX,
			Y: config.ZombieLaneY + float64(i)*config.ZombieLaneSpacing,
		})

		var img *ebiten.Image
		if images != nil {
			img = images.ImageOrPlaceholder(zombie.Image)
		}
		ecs.AddComponent(em, entity, &components.SpriteComponent{
			Image:   img,
			Width:   config.ZombieSpriteWidth,
			Height:  config.ZombieSpriteHeight,
			Caption: zombie.Name,
		})
		ecs.AddComponent(em, entity, &ZombieLaneMarker{Order: i})

		ids = append(ids, entity)
	}
	return ids
}
