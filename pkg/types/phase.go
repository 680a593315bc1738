// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Phase 布阵界面的阶段
// 只允许 PhaseSetup -> PhaseReveal 的单向切换
type Phase int

const (
	// PhaseSetup 布阵阶段（抽卡、拖拽种植）
	PhaseSetup Phase = iota
	// PhaseReveal 僵尸来袭展示阶段
	PhaseReveal
)

// String 返回阶段的字符串表示
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseReveal:
		return "Reveal"
	default:
		return "Unknown"
	}
}
