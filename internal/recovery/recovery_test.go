package recovery

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"sports-ticker/internal/testutil"
)

type mockRestarter struct {
	calls int
}

func (m *mockRestarter) Restart() { m.calls++ }

type trace struct {
	ops []string
}

func newBoundaryForTest(restarter Restarter, tr *trace, sleeps *testutil.SleepRecorder) *Boundary {
	return New(Options{
		Restarter: restarter,
		Sleep: func(d time.Duration) {
			sleeps.Sleep(d)
			tr.ops = append(tr.ops, fmt.Sprintf("wait:%s", d))
		},
		Reclaim: func() { tr.ops = append(tr.ops, "reclaim") },
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		fault any
		want  Class
	}{
		{name: "wrapped resource sentinel", fault: fmt.Errorf("decoding: %w", ErrResourceExhausted), want: ClassResource},
		{name: "enomem", fault: fmt.Errorf("mmap: %w", syscall.ENOMEM), want: ClassResource},
		{name: "runtime oom text", fault: errors.New("runtime: out of memory"), want: ClassResource},
		{name: "oom panic string", fault: "runtime: out of memory: cannot allocate", want: ClassResource},
		{name: "plain error", fault: errors.New("index out of range"), want: ClassGeneric},
		{name: "non-error panic payload", fault: 42, want: ClassGeneric},
		{name: "unrelated string panic", fault: "boom", want: ClassGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.fault); got != tc.want {
				t.Fatalf("Classify(%v) = %s, want %s", tc.fault, got, tc.want)
			}
		})
	}
}

func TestRunWithoutFaultTouchesNothing(t *testing.T) {
	restarter := &mockRestarter{}
	tr := &trace{}
	b := newBoundaryForTest(restarter, tr, &testutil.SleepRecorder{})

	b.Run(func() error { return nil })

	if restarter.calls != 0 {
		t.Fatalf("expected no restart, got %d", restarter.calls)
	}
	if len(tr.ops) != 0 {
		t.Fatalf("expected no recovery ops, got %v", tr.ops)
	}
}

func TestGenericFaultRunsLongWaitReclaimShortWaitRestart(t *testing.T) {
	restarter := &mockRestarter{}
	tr := &trace{}
	b := newBoundaryForTest(restarter, tr, &testutil.SleepRecorder{})

	b.Run(func() error { return errors.New("render exploded") })

	want := []string{"wait:10s", "reclaim", "wait:5s"}
	if len(tr.ops) != len(want) {
		t.Fatalf("expected ops %v, got %v", want, tr.ops)
	}
	for i, op := range want {
		if tr.ops[i] != op {
			t.Fatalf("op %d: expected %s, got %s", i, op, tr.ops[i])
		}
	}
	if restarter.calls != 1 {
		t.Fatalf("expected exactly one restart, got %d", restarter.calls)
	}
}

func TestResourceFaultReclaimsThenRestartsAfterShortWait(t *testing.T) {
	restarter := &mockRestarter{}
	tr := &trace{}
	b := newBoundaryForTest(restarter, tr, &testutil.SleepRecorder{})

	b.Run(func() error { return fmt.Errorf("grow buffer: %w", ErrResourceExhausted) })

	want := []string{"reclaim", "wait:5s"}
	if len(tr.ops) != len(want) {
		t.Fatalf("expected ops %v, got %v", want, tr.ops)
	}
	for i, op := range want {
		if tr.ops[i] != op {
			t.Fatalf("op %d: expected %s, got %s", i, op, tr.ops[i])
		}
	}
	if restarter.calls != 1 {
		t.Fatalf("expected exactly one restart, got %d", restarter.calls)
	}
}

func TestRunRecoversPanicsAndRestartsOnce(t *testing.T) {
	restarter := &mockRestarter{}
	tr := &trace{}
	b := newBoundaryForTest(restarter, tr, &testutil.SleepRecorder{})

	b.Run(func() error {
		panic("slice bounds out of range")
	})

	if restarter.calls != 1 {
		t.Fatalf("expected exactly one restart after a panic, got %d", restarter.calls)
	}
}

func TestRunStopsProcessingAfterFault(t *testing.T) {
	restarter := &mockRestarter{}
	tr := &trace{}
	b := newBoundaryForTest(restarter, tr, &testutil.SleepRecorder{})

	stage := 0
	b.Run(func() error {
		stage = 1
		panic(fmt.Errorf("simulated allocation failure: %w", ErrResourceExhausted))
	})

	if stage != 1 {
		t.Fatalf("expected the step to have started")
	}
	if restarter.calls != 1 {
		t.Fatalf("expected exactly one restart invocation, got %d", restarter.calls)
	}
	// Resource class: no long wait before the restart.
	for _, op := range tr.ops {
		if op == "wait:10s" {
			t.Fatalf("resource fault must not take the generic long wait: %v", tr.ops)
		}
	}
}
