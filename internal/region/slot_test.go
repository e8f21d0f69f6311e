package region

import "testing"

func TestPaintAcceptsNewestTicket(t *testing.T) {
	var s Slot[string]
	ticket := s.Request()
	if !s.Pending() {
		t.Fatalf("expected pending after request")
	}
	if !s.Paint(ticket, "first") {
		t.Fatalf("expected paint accepted")
	}
	if s.Value() != "first" || !s.Loaded() || s.Pending() {
		t.Fatalf("unexpected slot state: value=%q loaded=%v pending=%v", s.Value(), s.Loaded(), s.Pending())
	}
}

func TestLateOlderResponseIsDiscarded(t *testing.T) {
	var s Slot[string]
	q1 := s.Request()
	q2 := s.Request()

	if !s.Paint(q2, "q2") {
		t.Fatalf("expected q2 accepted")
	}
	if s.Paint(q1, "q1") {
		t.Fatalf("expected q1 discarded after q2 painted")
	}
	if s.Value() != "q2" {
		t.Fatalf("expected q2 to remain painted, got %q", s.Value())
	}
}

func TestInOrderResponsesBothPaint(t *testing.T) {
	var s Slot[int]
	q1 := s.Request()
	q2 := s.Request()
	if !s.Paint(q1, 1) {
		t.Fatalf("expected q1 accepted")
	}
	if !s.Stale(q1) {
		t.Fatalf("expected q1 stale once q2 issued")
	}
	if !s.Pending() {
		t.Fatalf("expected q2 still pending")
	}
	if !s.Paint(q2, 2) || s.Value() != 2 {
		t.Fatalf("expected q2 to replace q1, got %d", s.Value())
	}
}

func TestFailKeepsPriorContents(t *testing.T) {
	var s Slot[string]
	s.Paint(s.Request(), "kept")
	ticket := s.Request()
	s.Fail(ticket)
	if s.Value() != "kept" {
		t.Fatalf("expected prior contents kept, got %q", s.Value())
	}
	if s.Pending() {
		t.Fatalf("expected no pending request after failure")
	}
}

func TestZeroTicketNeverPaints(t *testing.T) {
	var s Slot[string]
	if s.Paint(0, "x") {
		t.Fatalf("expected zero ticket rejected")
	}
	if s.Loaded() {
		t.Fatalf("expected slot unloaded")
	}
}
