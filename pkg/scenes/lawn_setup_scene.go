package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/decker502/pvz-setup/pkg/entities"
	"github.com/decker502/pvz-setup/pkg/game"
	"github.com/decker502/pvz-setup/pkg/systems"
	"github.com/decker502/pvz-setup/pkg/types"
	"github.com/decker502/pvz-setup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮配色
var (
	drawButtonColor  = color.RGBA{86, 150, 48, 255}
	readyButtonColor = color.RGBA{214, 120, 36, 255}
)

// LawnSetupScene 布阵界面
//
// 布阵状态全部由 SetupSession 持有，场景只负责：
//   - 把指针输入交给按钮系统和拖拽系统，由它们向会话发送事件
//   - 每帧读取 RenderView，同步按钮的可用/可见状态
//   - 进入 Reveal 阶段时创建僵尸展示实体
type LawnSetupScene struct {
	resourceManager *game.ResourceManager
	session         *game.SetupSession

	entityManager          *ecs.EntityManager
	buttonSystem           *systems.ButtonSystem
	dragDropSystem         *systems.DragDropSystem
	lawnRenderSystem       *systems.LawnRenderSystem
	buttonRenderSystem     *systems.ButtonRenderSystem
	zombieLaneRenderSystem *systems.ZombieLaneRenderSystem

	drawButton  ecs.EntityID
	readyButton ecs.EntityID
	dragState   ecs.EntityID

	// view 最近一次同步的渲染快照
	view game.RenderView

	zombieLaneCreated bool
}

// NewLawnSetupScene 创建布阵界面
//
// 参数：
//   - rm: 资源管理器（资源配置需已加载）
//   - lawnStrings: 界面文本
//   - session: 布阵会话
func NewLawnSetupScene(rm *game.ResourceManager, lawnStrings *game.LawnStrings, session *game.SetupSession) (*LawnSetupScene, error) {
	fonts, err := loadUIFonts(rm)
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	em := ecs.NewEntityManager()
	scene := &LawnSetupScene{
		resourceManager: rm,
		session:         session,
		entityManager:   em,
	}

	slotCount := entities.NewLawnSlots(em)
	scene.dragState = entities.NewDragState(em)

	scene.drawButton = entities.NewButton(em, entities.ButtonSpec{
		X:            config.PanelX,
		Y:            config.DrawButtonY,
		Width:        config.PanelWidth,
		Height:       config.DrawButtonHeight,
		Text:         lawnStrings.GetString("DRAW_PLANT"),
		DisabledText: lawnStrings.GetString("LIMIT_REACHED"),
		Font:         fonts.Label,
		FillColor:    drawButtonColor,
		OnClick:      func() { session.RequestDraw() },
	})
	scene.readyButton = entities.NewButton(em, entities.ButtonSpec{
		X:         config.ReadyButtonX,
		Y:         config.ReadyButtonY,
		Width:     config.ReadyButtonWidth,
		Height:    config.ReadyButtonHeight,
		Text:      lawnStrings.GetString("READY"),
		Font:      fonts.Stats,
		FillColor: readyButtonColor,
		OnClick:   func() { session.RequestReady() },
	})

	threshold := utils.DragThreshold()
	scene.buttonSystem = systems.NewButtonSystem(em)
	scene.dragDropSystem = systems.NewDragDropSystem(em, session, scene.dragState, threshold)
	scene.lawnRenderSystem = systems.NewLawnRenderSystem(rm, lawnStrings, fonts)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(em)
	scene.zombieLaneRenderSystem = systems.NewZombieLaneRenderSystem(em, lawnStrings, fonts)

	scene.syncView()

	log.Printf("[LawnSetupScene] Created: %d drop slots, drag threshold %.1f", slotCount, threshold)
	return scene, nil
}

// loadUIFonts 加载各级界面字体
func loadUIFonts(rm *game.ResourceManager) (systems.UIFonts, error) {
	var fonts systems.UIFonts
	sizes := []struct {
		size   float64
		target **text.GoTextFace
	}{
		{config.TitleFontSize, &fonts.Title},
		{config.StatsFontSize, &fonts.Stats},
		{config.LabelFontSize, &fonts.Label},
		{config.SmallFontSize, &fonts.Small},
	}
	for _, s := range sizes {
		face, err := rm.LoadDefaultFont(s.size)
		if err != nil {
			return fonts, err
		}
		*s.target = face
	}
	return fonts, nil
}

// Update 处理输入并同步渲染快照
// 按钮先于拖拽处理，按钮回调产生的状态变化在同一帧内可见
func (s *LawnSetupScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.dragDropSystem.Update(deltaTime)
	s.syncView()
}

// syncView 读取会话快照，更新按钮状态，必要时创建僵尸展示
func (s *LawnSetupScene) syncView() {
	s.view = s.session.View()
	setup := s.view.Phase == types.PhaseSetup

	s.syncButton(s.drawButton, s.view.DrawEnabled, setup)
	s.syncButton(s.readyButton, s.view.ReadyEnabled, setup)

	if s.view.Phase == types.PhaseReveal && !s.zombieLaneCreated {
		s.enterReveal()
	}
}

// enterReveal 移除布阵交互实体（拖放区域、按钮、拖拽状态），创建僵尸展示
func (s *LawnSetupScene) enterReveal() {
	em := s.entityManager
	for _, entityID := range ecs.GetEntitiesWith1[*components.DropSlotComponent](em) {
		em.DestroyEntity(entityID)
	}
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](em) {
		em.DestroyEntity(entityID)
	}
	em.RemoveMarkedEntities()

	if ecs.HasComponent[*components.DragStateComponent](em, s.dragState) {
		ecs.RemoveComponent[*components.DragStateComponent](em, s.dragState)
	}

	ids := entities.NewZombieLane(em, s.resourceManager, s.view.Zombies)
	s.zombieLaneCreated = true
	log.Printf("[LawnSetupScene] Reveal: created %d zombie entities, %d entities alive", len(ids), em.EntityCount())
}

func (s *LawnSetupScene) syncButton(entityID ecs.EntityID, enabled, visible bool) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	button.Visible = visible
	button.Enabled = enabled
	if !enabled {
		button.State = components.UIDisabled
	} else if button.State == components.UIDisabled {
		button.State = components.UINormal
	}
}

// Draw 绘制界面：草坪与面板、按钮、僵尸展示
func (s *LawnSetupScene) Draw(screen *ebiten.Image) {
	s.lawnRenderSystem.Draw(screen, s.view, s.dragDropSystem.State())
	s.buttonRenderSystem.Draw(screen)
	if s.view.Phase == types.PhaseReveal {
		s.zombieLaneRenderSystem.Draw(screen)
	}
}

// SetDebugOverlay 开关格子行列编号
func (s *LawnSetupScene) SetDebugOverlay(enabled bool) {
	s.lawnRenderSystem.SetDebugOverlay(enabled)
}

// View 返回最近一次同步的渲染快照
func (s *LawnSetupScene) View() game.RenderView {
	return s.view
}
