package broker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSlot_ResolveWithoutWaiter(t *testing.T) {
	var s Slot[int]
	if s.Resolve(1) {
		t.Fatalf("Resolve with no ticket must report false")
	}
	if s.Waiting() {
		t.Fatalf("empty slot reports waiting")
	}
}

func TestSlot_ResolvedOnce(t *testing.T) {
	var s Slot[int]
	tk := s.Install()
	if !s.Waiting() {
		t.Fatalf("installed ticket should be waiting")
	}
	if !s.Resolve(1) {
		t.Fatalf("first Resolve must deliver")
	}
	if s.Resolve(2) {
		t.Fatalf("second Resolve must be dropped")
	}
	v, err := tk.Wait(context.Background())
	if err != nil || v != 1 {
		t.Fatalf("Wait: v=%d err=%v", v, err)
	}
}

func TestSlot_NewestTicketWins(t *testing.T) {
	var s Slot[string]
	old := s.Install()
	cur := s.Install()

	if !s.Resolve("event") {
		t.Fatalf("Resolve must reach the current ticket")
	}
	if v, _ := cur.Wait(context.Background()); v != "event" {
		t.Fatalf("current ticket got %q", v)
	}

	// The replaced ticket can still be answered directly by its own call.
	if !old.Resolve("mismatch") {
		t.Fatalf("direct Resolve on an unserved ticket must deliver")
	}
	if v, _ := old.Wait(context.Background()); v != "mismatch" {
		t.Fatalf("old ticket got %q", v)
	}
}

func TestSlot_AbandonedTicket(t *testing.T) {
	var s Slot[int]
	tk := s.Install()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if _, err := tk.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline, got %v", err)
	}
	if s.Resolve(1) {
		t.Fatalf("abandoned ticket must not receive results")
	}
	if tk.Resolve(1) {
		t.Fatalf("abandoned ticket must reject direct results")
	}

	next := s.Install()
	if !s.Resolve(2) {
		t.Fatalf("next ticket should receive")
	}
	if v, _ := next.Wait(context.Background()); v != 2 {
		t.Fatalf("got %d", v)
	}
}
