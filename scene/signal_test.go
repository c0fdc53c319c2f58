package scene

import "testing"

func TestSignal_EmitOrder(t *testing.T) {
	var s Signal
	var got []int

	s.Subscribe(func() { got = append(got, 1) })
	s.Subscribe(func() { got = append(got, 2) })
	s.Subscribe(func() { got = append(got, 3) })

	s.Emit()

	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Emit reached %d subscribers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("subscriber order %v, want %v", got, want)
			break
		}
	}
}

func TestSignal_Unsubscribe(t *testing.T) {
	var s Signal
	calls := 0

	tok := s.Subscribe(func() { calls++ })
	s.Emit()
	s.Unsubscribe(tok)
	s.Emit()

	if calls != 1 {
		t.Errorf("calls = %d after unsubscribe, want 1", calls)
	}

	// Unsubscribing an unknown token is harmless.
	s.Unsubscribe(Token(999))
	s.Emit()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSignal_SubscribeDuringEmit(t *testing.T) {
	var s Signal
	lateCalled := false

	s.Subscribe(func() {
		s.Subscribe(func() { lateCalled = true })
	})
	s.Emit()

	if lateCalled {
		t.Error("subscriber added during Emit ran in the same Emit")
	}
	s.Emit()
	if !lateCalled {
		t.Error("subscriber added during Emit never ran")
	}
}
