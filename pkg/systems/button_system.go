package systems

import (
	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/decker502/pvz-setup/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、按下、释放等交互逻辑
//
// 只有在按钮上按下并在同一按钮上释放才算一次点击，
// 因此把植物拖到按钮上松开不会误触发按钮。
type ButtonSystem struct {
	entityManager *ecs.EntityManager

	wasPressed bool
	// pressedOn 按下时所在的按钮，0 表示不在任何按钮上
	pressedOn ecs.EntityID
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 读取指针状态（鼠标或触摸）并处理
func (s *ButtonSystem) Update(deltaTime float64) {
	pressed, x, y := utils.GetPointerState()
	s.HandlePointer(pressed, float64(x), float64(y))
}

// HandlePointer 根据本帧指针状态更新按钮状态并触发回调
func (s *ButtonSystem) HandlePointer(pressed bool, x, y float64) {
	justPressed := pressed && !s.wasPressed
	justReleased := !pressed && s.wasPressed
	s.wasPressed = pressed

	hovered := s.buttonAt(x, y)
	if justPressed {
		s.pressedOn = hovered
	}

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		// 禁用或隐藏的按钮不响应交互
		if !button.Visible || !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if entityID != hovered {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed && s.pressedOn == entityID:
			button.State = components.UIClicked
		case justReleased && s.pressedOn == entityID:
			button.State = components.UIHovered
			if button.OnClick != nil {
				button.OnClick()
			}
		default:
			button.State = components.UIHovered
		}
	}

	if justReleased {
		s.pressedOn = 0
	}
}

// buttonAt 返回指针下方可交互的按钮，没有则返回 0
func (s *ButtonSystem) buttonAt(x, y float64) ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !button.Visible || !button.Enabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if isPointInButton(x, y, pos.X, pos.Y, button.Width, button.Height) {
			return entityID
		}
	}
	return 0
}

// isPointInButton 检测指针是否在按钮范围内
func isPointInButton(x, y, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return x >= buttonX &&
		x <= buttonX+buttonWidth &&
		y >= buttonY &&
		y <= buttonY+buttonHeight
}
