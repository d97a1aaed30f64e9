package space

import (
	"fmt"
	"iter"
	"slices"
)

// Space is an N-dimensional index space, partitioned into blocks.
//
// Space is a value type. Copies do not share mutable state: every operation
// modifying a space allocates fresh storage.
//
// The zero value is a valid space with no dimensions.
type Space struct {
	global    []uint64 // underlying grid of work
	blocks    []uint64 // number of blocks per dimension
	blockSize []uint64 // ceiling block size per dimension (derived)
	params    []uint64 // opaque parameters, passed through untouched
}

// New creates a space for a global extent, with one block per dimension.
func New(globalExtent ...uint64) Space {
	sp := Space{global: slices.Clone(globalExtent)}
	ones := make([]uint64, len(globalExtent))
	for i := range ones {
		ones[i] = 1
	}
	sp.partition(ones)
	return sp
}

// N returns the number of dimensions.
func (sp Space) N() int {
	return len(sp.global)
}

// GlobalExtent returns a copy of the global extent per dimension.
func (sp Space) GlobalExtent() []uint64 {
	return slices.Clone(sp.global)
}

// BlockCount returns a copy of the number of blocks per dimension.
func (sp Space) BlockCount() []uint64 {
	return slices.Clone(sp.blocks)
}

// BlockSize returns a copy of the (ceiling) block size per dimension.
func (sp Space) BlockSize() []uint64 {
	return slices.Clone(sp.blockSize)
}

// SetBlockPartition re-partitions the space. It expects a positive block count
// for every dimension. On error the space is left unchanged.
func (sp *Space) SetBlockPartition(blockCount ...uint64) error {
	if len(blockCount) != sp.N() {
		return fmt.Errorf("%w: %d block counts for %d dimensions", ErrDimension,
			len(blockCount), sp.N())
	}
	for i, k := range blockCount {
		if k == 0 {
			tracer().Errorf("space: zero block count for dimension %d", i)
			return fmt.Errorf("%w: dimension %d", ErrZeroBlockCount, i)
		}
	}
	sp.partition(slices.Clone(blockCount))
	tracer().Debugf("space: extent %v partitioned into %v blocks of size ≤ %v",
		sp.global, sp.blocks, sp.blockSize)
	return nil
}

// partition stores blockCount and recomputes block sizes. blockCount must be
// owned by sp and free of zeros.
func (sp *Space) partition(blockCount []uint64) {
	sp.blocks = blockCount
	sp.blockSize = make([]uint64, len(blockCount))
	for i := range blockCount {
		sp.blockSize[i] = sp.global[i] / sp.blocks[i]
		if !sp.evenPartition(i) {
			sp.blockSize[i]++ // blocks must be slightly larger
		}
	}
}

func (sp Space) evenPartition(i int) bool {
	return sp.global[i]%sp.blocks[i] == 0
}

// extra is the number of blocks in dimension i which are one unit shorter
// than the ceiling block size. It is 0 for an even partition.
func (sp Space) extra(i int) uint64 {
	if sp.evenPartition(i) {
		return 0
	}
	return sp.blocks[i]*sp.blockSize[i] - sp.global[i]
}

// ValidBlock reports whether block denotes a block of the partition.
func (sp Space) ValidBlock(block ...uint64) bool {
	if len(block) != sp.N() {
		return false
	}
	for i, b := range block {
		if b >= sp.blocks[i] {
			return false
		}
	}
	return true
}

// IndexSize returns the extent of a block, per dimension.
// block must be a valid block coordinate, otherwise IndexSize panics.
func (sp Space) IndexSize(block ...uint64) []uint64 {
	assert(sp.ValidBlock(block...), "space.IndexSize: block out of range")
	size := make([]uint64, sp.N())
	for i, b := range block {
		if b < sp.extra(i) {
			size[i] = sp.blockSize[i] - 1
		} else {
			size[i] = sp.blockSize[i]
		}
	}
	return size
}

// IndexOffset returns the global coordinate of the first unit of a block, per
// dimension. block must be a valid block coordinate, otherwise IndexOffset
// panics.
func (sp Space) IndexOffset(block ...uint64) []uint64 {
	assert(sp.ValidBlock(block...), "space.IndexOffset: block out of range")
	offset := make([]uint64, sp.N())
	for i, b := range block {
		extra := sp.extra(i)
		if b < extra {
			offset[i] = b*sp.blockSize[i] - b
		} else {
			offset[i] = b*sp.blockSize[i] - extra
		}
	}
	return offset
}

// Range returns the half-open global index range [start, stop) of a block of
// a one-dimensional space.
func (sp Space) Range(block uint64) (start, stop uint64) {
	assert(sp.N() == 1, "space.Range: space is not one-dimensional")
	start = sp.IndexOffset(block)[0]
	return start, start + sp.IndexSize(block)[0]
}

// Projection returns the one-dimensional space of dimension dim, keeping the
// block count of that dimension. Parameters are not carried over.
func (sp Space) Projection(dim int) Space {
	assert(dim >= 0 && dim < sp.N(), "space.Projection: no such dimension")
	p := Space{global: []uint64{sp.global[dim]}}
	p.partition([]uint64{sp.blocks[dim]})
	return p
}

// NumBlocks returns the total number of blocks of the partition.
func (sp Space) NumBlocks() uint64 {
	if sp.N() == 0 {
		return 0
	}
	n := uint64(1)
	for _, k := range sp.blocks {
		n *= k
	}
	return n
}

// Blocks returns an iterator over all block coordinates in row-major order,
// i.e., with the last dimension varying fastest. The yielded slice is fresh
// for every block.
func (sp Space) Blocks() iter.Seq[[]uint64] {
	return func(yield func([]uint64) bool) {
		if sp.N() == 0 {
			return
		}
		block := make([]uint64, sp.N())
		for {
			if !yield(slices.Clone(block)) {
				return
			}
			i := sp.N() - 1
			for ; i >= 0; i-- { // odometer increment
				block[i]++
				if block[i] < sp.blocks[i] {
					break
				}
				block[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// AddParam appends an opaque parameter.
func (sp *Space) AddParam(p uint64) {
	sp.params = append(slices.Clip(sp.params), p)
}

// Params returns a copy of the opaque parameters.
func (sp Space) Params() []uint64 {
	return slices.Clone(sp.params)
}

// Equal reports whether two spaces have the same global extent and the same
// block partition. Parameters are not compared.
func (sp Space) Equal(other Space) bool {
	return slices.Equal(sp.global, other.global) && slices.Equal(sp.blocks, other.blocks)
}

// String returns a short human readable description.
func (sp Space) String() string {
	return fmt.Sprintf("space%v/%v", sp.global, sp.blocks)
}
