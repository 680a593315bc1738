package game

import (
	"fmt"

	"github.com/decker502/pvz-setup/pkg/types"
)

// Event 渲染层发来的用户操作
type Event interface {
	fmt.Stringer
	lawnEvent()
}

// DrawRequested 点击 "Draw Plant"
type DrawRequested struct{}

// ReadyRequested 点击 "Ready!"
type ReadyRequested struct{}

// DragStarted 在备选区或草坪格子上开始拖拽
type DragStarted struct {
	Source types.DragSource
	Index  int
}

// DragEnded 拖拽结束（无论是否落在有效目标上）
type DragEnded struct{}

// DropToGrid 在草坪格子上松开
type DropToGrid struct {
	Index int
}

// DropToBench 在备选区上松开
type DropToBench struct{}

func (DrawRequested) lawnEvent()  {}
func (ReadyRequested) lawnEvent() {}
func (DragStarted) lawnEvent()    {}
func (DragEnded) lawnEvent()      {}
func (DropToGrid) lawnEvent()     {}
func (DropToBench) lawnEvent()    {}

func (DrawRequested) String() string  { return "DrawRequested" }
func (ReadyRequested) String() string { return "ReadyRequested" }
func (DragEnded) String() string      { return "DragEnded" }
func (DropToBench) String() string    { return "DropToBench" }

func (e DragStarted) String() string {
	return fmt.Sprintf("DragStarted(%s, %d)", e.Source, e.Index)
}

func (e DropToGrid) String() string {
	return fmt.Sprintf("DropToGrid(%d)", e.Index)
}
