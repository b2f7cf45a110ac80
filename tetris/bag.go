package tetris

import "math/rand/v2"

// Randomizer produces the sequence of tetrominoes.
type Randomizer interface {
	Next() Shape
}

// Source is a uniform source of randomness. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Bag is the 7-bag randomizer: every shape comes out once per shuffled bag of 7.
type Bag struct {
	bag   [7]Shape
	index int
	rng   Source
}

func NewBag(rng Source) *Bag {
	b := &Bag{rng: rng}
	b.fill()
	return b
}

// NewSeededBag returns a bag that produces the same sequence for the same seed.
func NewSeededBag(seed uint64) *Bag {
	return NewBag(rand.New(rand.NewPCG(seed, seed)))
}

func NewRandomBag() *Bag {
	return NewBag(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func (b *Bag) Next() Shape {
	if b.index == len(b.bag) {
		b.fill()
	}
	s := b.bag[b.index]
	b.index++
	return s
}

// fill refills the bag with a Fisher-Yates shuffle and rewinds it.
func (b *Bag) fill() {
	b.bag = Shapes
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
	b.index = 0
}
