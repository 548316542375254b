package systems

import (
	"errors"
	"fmt"
)

// ErrStageNotFound 调度表中不存在指定名称的阶段
var ErrStageNotFound = errors.New("stage not found")

// System 每个 tick 调用一次的系统
type System interface {
	Update(deltaTime float64)
}

// SystemFunc 将普通函数适配为 System
type SystemFunc func(deltaTime float64)

// Update 实现 System 接口
func (f SystemFunc) Update(deltaTime float64) {
	f(deltaTime)
}

// Stage 调度阶段
// 同一阶段内的系统按加入顺序依次执行；RunIf 非 nil 且返回 false 时整个阶段跳过
type Stage struct {
	Name    string
	Systems []System
	RunIf   func() bool
}

// Schedule 有序的阶段列表
//
// 阶段之间是严格的先后关系：前一阶段的所有系统执行完毕后才执行下一阶段，
// 因此生产者阶段写入的事件在同一 tick 内对后续阶段可见。
type Schedule struct {
	stages []*Stage
}

// NewSchedule 创建空调度表
func NewSchedule() *Schedule {
	return &Schedule{}
}

// AddStage 在末尾追加阶段
func (s *Schedule) AddStage(name string, systems ...System) *Stage {
	stage := &Stage{Name: name, Systems: systems}
	s.stages = append(s.stages, stage)
	return stage
}

// InsertStageBefore 在名为 before 的阶段之前插入阶段
func (s *Schedule) InsertStageBefore(before string, stage *Stage) error {
	for i, existing := range s.stages {
		if existing.Name == before {
			s.stages = append(s.stages[:i], append([]*Stage{stage}, s.stages[i:]...)...)
			return nil
		}
	}
	return fmt.Errorf("insert %q before %q: %w", stage.Name, before, ErrStageNotFound)
}

// Stage 按名称查找阶段
func (s *Schedule) Stage(name string) (*Stage, bool) {
	for _, stage := range s.stages {
		if stage.Name == name {
			return stage, true
		}
	}
	return nil, false
}

// StageNames 返回按执行顺序排列的阶段名称
func (s *Schedule) StageNames() []string {
	names := make([]string, 0, len(s.stages))
	for _, stage := range s.stages {
		names = append(names, stage.Name)
	}
	return names
}

// Run 执行一个 tick
func (s *Schedule) Run(deltaTime float64) {
	for _, stage := range s.stages {
		if stage.RunIf != nil && !stage.RunIf() {
			continue
		}
		for _, system := range stage.Systems {
			system.Update(deltaTime)
		}
	}
}
