package tetris

import "math/rand"

// bag is the seven-bag randomizer: every refill is a uniformly random
// permutation of all seven piece types, so any seven draws aligned to a
// refill boundary contain each type exactly once.
type bag struct {
	rng    *rand.Rand
	pieces []PieceType
}

func newBag(rng *rand.Rand) *bag {
	return &bag{rng: rng}
}

// refill replaces the (empty) bag with a fresh shuffled permutation.
func (b *bag) refill() {
	b.pieces = b.pieces[:0]
	for t := PieceI; t <= PieceL; t++ {
		b.pieces = append(b.pieces, t)
	}
	b.rng.Shuffle(len(b.pieces), func(i, j int) {
		b.pieces[i], b.pieces[j] = b.pieces[j], b.pieces[i]
	})
}

// draw pops the next piece type, refilling first when the bag is exhausted.
func (b *bag) draw() PieceType {
	if len(b.pieces) == 0 {
		b.refill()
	}
	t := b.pieces[0]
	b.pieces = b.pieces[1:]
	return t
}

// nextQueue is the lookahead buffer fed by the bag. It is replenished to the
// target length after every dequeue, so the host can always preview upcoming
// pieces.
type nextQueue struct {
	bag    *bag
	target int
	pieces []PieceType
}

func newNextQueue(b *bag, target int) *nextQueue {
	q := &nextQueue{bag: b, target: target}
	q.ensureFilled()
	return q
}

// ensureFilled tops the queue up to the target length.
func (q *nextQueue) ensureFilled() {
	for len(q.pieces) < q.target {
		q.pieces = append(q.pieces, q.bag.draw())
	}
}

// dequeue pops the front piece type and refills the buffer.
func (q *nextQueue) dequeue() PieceType {
	q.ensureFilled()
	t := q.pieces[0]
	q.pieces = q.pieces[1:]
	q.ensureFilled()
	return t
}

// peek returns a copy of the buffered piece types in order.
func (q *nextQueue) peek() []PieceType {
	out := make([]PieceType, len(q.pieces))
	copy(out, q.pieces)
	return out
}
