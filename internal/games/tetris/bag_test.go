package tetris

import (
	"math/rand"
	"testing"
)

func TestBagFairness(t *testing.T) {
	b := newBag(rand.New(rand.NewSource(7)))

	// Any seven draws aligned to a refill boundary contain each type once.
	for round := 0; round < 3; round++ {
		seen := make(map[PieceType]int)
		for i := 0; i < 7; i++ {
			seen[b.draw()]++
		}
		for pt := PieceI; pt <= PieceL; pt++ {
			if seen[pt] != 1 {
				t.Errorf("round %d: %s drawn %d times, want 1", round, pt, seen[pt])
			}
		}
	}
}

func TestBagDeterminism(t *testing.T) {
	b1 := newBag(rand.New(rand.NewSource(42)))
	b2 := newBag(rand.New(rand.NewSource(42)))

	for i := 0; i < 21; i++ {
		if got, want := b1.draw(), b2.draw(); got != want {
			t.Fatalf("draw %d: %s vs %s", i, got, want)
		}
	}
}

func TestNextQueueKeepsTargetLength(t *testing.T) {
	q := newNextQueue(newBag(rand.New(rand.NewSource(1))), 5)

	if got := len(q.peek()); got != 5 {
		t.Fatalf("initial queue length = %d, want 5", got)
	}
	for i := 0; i < 10; i++ {
		q.dequeue()
		if got := len(q.peek()); got != 5 {
			t.Fatalf("after dequeue %d: length = %d, want 5", i, got)
		}
	}
}

func TestNextQueueOrderMatchesBag(t *testing.T) {
	b1 := newBag(rand.New(rand.NewSource(9)))
	b2 := newBag(rand.New(rand.NewSource(9)))
	q := newNextQueue(b1, 3)

	for i := 0; i < 14; i++ {
		if got, want := q.dequeue(), b2.draw(); got != want {
			t.Fatalf("piece %d: %s from queue, %s from bag", i, got, want)
		}
	}
}

func TestPeekReturnsCopy(t *testing.T) {
	q := newNextQueue(newBag(rand.New(rand.NewSource(3))), 3)

	p := q.peek()
	p[0] = PieceType(99)
	if q.peek()[0] == PieceType(99) {
		t.Error("peek exposed internal buffer")
	}
}
