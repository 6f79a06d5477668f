package ecs

// bitset is a fixed-width membership mask, wide enough for MaxComponents
// and MaxGroups.
type bitset uint64

func (b *bitset) set(i uint32) {
	*b |= 1 << i
}

func (b *bitset) clear(i uint32) {
	*b &^= 1 << i
}

func (b bitset) has(i uint32) bool {
	return b&(1<<i) != 0
}
