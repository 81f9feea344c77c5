package stacker

// Tower tracks the ordered stack of settled blocks, bottom to top, and
// the running tower height. Index 0 is the base slab, which is never
// removed: removing it would desynchronize the height bookkeeping from
// the stack, so non-removability is enforced here as an invariant.
type Tower struct {
	blocks      []*Block
	height      float64 // Vertical level of the top block's center
	blockHeight float64
}

// NewTower creates a tower holding only the base block. The base's
// vertical position is the initial tower height.
func NewTower(base *Block, blockHeight float64) *Tower {
	base.settleY = base.Pos.Y
	return &Tower{
		blocks:      []*Block{base},
		height:      base.Pos.Y,
		blockHeight: blockHeight,
	}
}

// Height returns the vertical level of the tower top.
func (t *Tower) Height() float64 {
	return t.height
}

// Len returns the number of settled blocks, base included.
func (t *Tower) Len() int {
	return len(t.blocks)
}

// Top returns the topmost settled block.
func (t *Tower) Top() *Block {
	return t.blocks[len(t.blocks)-1]
}

// Base returns the base slab.
func (t *Tower) Base() *Block {
	return t.blocks[0]
}

// Blocks returns the settled stack, bottom to top. Callers must not
// mutate the returned slice.
func (t *Tower) Blocks() []*Block {
	return t.blocks
}

// Append books a freshly dropped block into the stack: the tower grows
// by one block height and the block records its settle level.
func (t *Tower) Append(b *Block) {
	t.height += t.blockHeight
	b.settleY = t.height
	t.blocks = append(t.blocks, b)
}

// Remove takes a block out of the stack and shrinks the tower by one
// block height. Returns false if the block is the base or not tracked.
func (t *Tower) Remove(b *Block) bool {
	for i, cur := range t.blocks {
		if cur != b {
			continue
		}
		if i == 0 {
			return false // base slab is non-removable
		}
		t.blocks = append(t.blocks[:i], t.blocks[i+1:]...)
		t.height -= t.blockHeight
		return true
	}
	return false
}
