package sparse

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a 32-bit compressed sparse bitmap. It wraps the roaring
// implementation and exposes the subset of its surface the library needs.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates an empty bitmap.
func New() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Of creates a bitmap holding the given positions.
func Of(positions ...uint32) *Bitmap {
	return &Bitmap{rb: roaring.BitmapOf(positions...)}
}

// Add inserts a position.
func (b *Bitmap) Add(pos uint32) {
	b.rb.Add(pos)
}

// Remove deletes a position.
func (b *Bitmap) Remove(pos uint32) {
	b.rb.Remove(pos)
}

// Contains reports whether pos is present.
func (b *Bitmap) Contains(pos uint32) bool {
	return b.rb.Contains(pos)
}

// IsEmpty reports whether no position is present.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of positions present.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone()}
}

// Clear removes every position.
func (b *Bitmap) Clear() {
	b.rb.Clear()
}

// And intersects in place with other.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Or unions in place with other.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// AndNot removes other's positions in place.
func (b *Bitmap) AndNot(other *Bitmap) {
	b.rb.AndNot(other.rb)
}

// Values returns the positions in ascending order.
func (b *Bitmap) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// GetSizeInBytes returns the serialized size of the underlying bitmap.
func (b *Bitmap) GetSizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}
