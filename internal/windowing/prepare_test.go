package windowing_test

import (
	"testing"

	"github.com/petasbytes/web-agent/internal/windowing"
	"github.com/petasbytes/web-agent/memory"
)

func TestPrepareSendWindow_BudgetRespected_OrderPreserved(t *testing.T) {
	// Oldest -> newest
	msgs := []memory.Message{
		User(T("old")), // G0: 3 + 4 = 7
		Asst(TU("a")),  // G1 part: 4
		User(TRString("a", "r")), // G1 part: 1 + 4 = 5 => G1 total 9
		User(T("tail")),          // G2: 4 + 4 = 8
	}
	budget := 17 // G2(8) + G1(9) = 17

	window, stats := windowing.PrepareSendWindow(msgs, budget, windowing.HeuristicCounter{})

	if stats.Budget != budget || stats.Total != 17 || stats.IncludedGroups != 2 || stats.OverBudgetNewest {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(window) != 3 { // expect msgs[1:]
		t.Fatalf("unexpected window length: got %d want 3", len(window))
	}
	if window[0].Role != memory.RoleAssistant || window[1].Role != memory.RoleUser || window[2].Role != memory.RoleUser {
		t.Fatalf("unexpected roles order in window: %+v", window)
	}
}

func TestPrepareSendWindow_NewestGroupOverBudget(t *testing.T) {
	msgs := []memory.Message{
		User(T("old")), // G0: 7
		Asst(TU("a")),  // G1 part: 4
		User(TRString("a", "xxxxxx")), // G1 part: 6 + 4 = 10 => G1 total 14 (newest)
	}
	budget := 10 // less than newest group cost (14)

	window, stats := windowing.PrepareSendWindow(msgs, budget, windowing.HeuristicCounter{})

	if window != nil {
		t.Fatalf("expected empty window, got %d messages", len(window))
	}
	if !stats.OverBudgetNewest || stats.IncludedGroups != 0 || stats.SkippedGroups != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestPrepareSendWindow_ZeroBudget(t *testing.T) {
	msgs := []memory.Message{User(T("hi"))}
	window, stats := windowing.PrepareSendWindow(msgs, 0, windowing.HeuristicCounter{})
	if window != nil || !stats.OverBudgetNewest {
		t.Fatalf("expected empty window with OverBudgetNewest, got window=%v stats=%+v", window, stats)
	}
}

func TestPrepareSendWindow_EmptyConversation(t *testing.T) {
	window, stats := windowing.PrepareSendWindow(nil, 100, windowing.HeuristicCounter{})
	if window != nil || stats.Total != 0 || stats.Budget != 100 {
		t.Fatalf("unexpected result: window=%v stats=%+v", window, stats)
	}
}

func TestPrepareSendWindow_AllFit(t *testing.T) {
	msgs := []memory.Message{User(T("a")), Asst(T("b"))}
	window, stats := windowing.PrepareSendWindow(msgs, 100, windowing.HeuristicCounter{})
	if len(window) != 2 || stats.IncludedGroups != 2 || stats.SkippedGroups != 0 {
		t.Fatalf("expected full window, got window=%d stats=%+v", len(window), stats)
	}
}
