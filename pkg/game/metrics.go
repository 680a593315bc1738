package game

import (
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/types"
)

// Metrics 由状态推导出的统计值，每次渲染重新计算
type Metrics struct {
	// Placed 草坪上已种植的数量
	Placed int
	// Created 当前存在的实例总数（备选区 + 草坪）
	Created int
	// RemainingQuota 还能抽取的数量
	RemainingQuota int
	// CanDraw 是否允许抽卡
	CanDraw bool
	// ReadyEnabled 全部 MaxPlants 个实例都已种到草坪上
	ReadyEnabled bool
}

// ComputeMetrics 计算统计值（纯函数）
func ComputeMetrics(s LawnState) Metrics {
	placed := 0
	for _, plant := range s.Grid {
		if plant != nil {
			placed++
		}
	}

	created := len(s.Bench) + placed
	remaining := max(0, config.MaxPlants-created)
	setup := s.Phase == types.PhaseSetup

	return Metrics{
		Placed:         placed,
		Created:        created,
		RemainingQuota: remaining,
		CanDraw:        setup && remaining > 0,
		ReadyEnabled:   setup && placed == config.MaxPlants,
	}
}
