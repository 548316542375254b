package systems

import (
	"errors"
	"reflect"
	"testing"
)

// TestSchedule_Order 测试阶段按顺序执行，插入的阶段位于指定阶段之前
func TestSchedule_Order(t *testing.T) {
	var calls []string
	record := func(name string) System {
		return SystemFunc(func(float64) { calls = append(calls, name) })
	}

	s := NewSchedule()
	s.AddStage("input", record("input.a"), record("input.b"))
	s.AddStage("cleanup", record("cleanup"))

	if err := s.InsertStageBefore("cleanup", &Stage{Name: "hover", Systems: []System{record("hover")}}); err != nil {
		t.Fatalf("InsertStageBefore() error = %v", err)
	}
	if err := s.InsertStageBefore("cleanup", &Stage{Name: "change", Systems: []System{record("change")}}); err != nil {
		t.Fatalf("InsertStageBefore() error = %v", err)
	}

	wantStages := []string{"input", "hover", "change", "cleanup"}
	if got := s.StageNames(); !reflect.DeepEqual(got, wantStages) {
		t.Fatalf("StageNames() = %v, want %v", got, wantStages)
	}

	s.Run(1.0 / 60)
	wantCalls := []string{"input.a", "input.b", "hover", "change", "cleanup"}
	if !reflect.DeepEqual(calls, wantCalls) {
		t.Errorf("calls = %v, want %v", calls, wantCalls)
	}
}

// TestSchedule_RunIf 测试运行条件为 false 时跳过整个阶段
func TestSchedule_RunIf(t *testing.T) {
	enabled := false
	count := 0

	s := NewSchedule()
	stage := s.AddStage("gated", SystemFunc(func(float64) { count++ }))
	stage.RunIf = func() bool { return enabled }

	s.Run(1.0 / 60)
	if count != 0 {
		t.Fatalf("gated stage ran while disabled")
	}

	enabled = true
	s.Run(1.0 / 60)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

// TestSchedule_InsertUnknownStage 测试插入到不存在的阶段之前返回错误
func TestSchedule_InsertUnknownStage(t *testing.T) {
	s := NewSchedule()
	s.AddStage("input")

	err := s.InsertStageBefore("platform", &Stage{Name: "hover"})
	if !errors.Is(err, ErrStageNotFound) {
		t.Fatalf("error = %v, want ErrStageNotFound", err)
	}
	if _, ok := s.Stage("hover"); ok {
		t.Error("stage should not be inserted on error")
	}
	if _, ok := s.Stage("input"); !ok {
		t.Error("expected to find input stage")
	}
}
