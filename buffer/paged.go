package buffer

// PageSize is the paged-storage window length: the number of samples Paged
// loads and stores at a time.
const PageSize = 32768

// page backs Paged with a fixed-size window plus the logical offset it
// currently represents.
type page[T Float] struct {
	offset uint64
	data   []T
	dirty  bool
}

// Paged is a reference Buffer implementation that never exposes a single
// contiguous region over its full length, modeling a disk-backed or
// externally paged numeric sequence. It loads/stores through fixed-size
// page windows, exercising the "paged" and "common" sample-array variants
// rather than the contiguous fast paths.
type Paged[T Float] struct {
	length uint64
	load   func(offset uint64, dst []T)
	store  func(offset uint64, src []T)
	cur    *page[T]
}

// NewPaged constructs a Paged buffer of the given logical length, backed by
// the supplied load/store callbacks (e.g. reading/writing a memory-mapped
// file or remote store in BUFFER_LENGTH-sized windows).
func NewPaged[T Float](length uint64, load func(offset uint64, dst []T), store func(offset uint64, src []T)) *Paged[T] {
	return &Paged[T]{length: length, load: load, store: store}
}

func (p *Paged[T]) Length() uint64 { return p.length }

func (p *Paged[T]) ensurePage(i uint64) *page[T] {
	pageOff := (i / PageSize) * PageSize
	if p.cur != nil && p.cur.offset == pageOff {
		return p.cur
	}
	p.flush()
	n := PageSize
	if rem := p.length - pageOff; rem < uint64(n) {
		n = int(rem)
	}
	data := make([]T, n)
	p.load(pageOff, data)
	p.cur = &page[T]{offset: pageOff, data: data}
	return p.cur
}

func (p *Paged[T]) flush() {
	if p.cur != nil && p.cur.dirty {
		p.store(p.cur.offset, p.cur.data)
	}
	p.cur = nil
}

func (p *Paged[T]) Get(i uint64) T {
	pg := p.ensurePage(i)
	return pg.data[i-pg.offset]
}

func (p *Paged[T]) Set(i uint64, v T) {
	pg := p.ensurePage(i)
	pg.data[i-pg.offset] = v
	pg.dirty = true
}

func (p *Paged[T]) BulkGet(offset uint64, dst []T, dstOffset int, count int) {
	for k := 0; k < count; k++ {
		dst[dstOffset+k] = p.Get(offset + uint64(k))
	}
}

func (p *Paged[T]) BulkSet(offset uint64, src []T, srcOffset int, count int) {
	for k := 0; k < count; k++ {
		p.Set(offset+uint64(k), src[srcOffset+k])
	}
}

func (p *Paged[T]) SubArr(offset, count uint64) Buffer[T] {
	p.flush()
	return &Paged[T]{
		length: count,
		load:   func(o uint64, dst []T) { p.load(offset+o, dst) },
		store:  func(o uint64, src []T) { p.store(offset+o, src) },
	}
}

// AsContiguous always reports false: Paged never exposes a single backing
// region, which is the whole point of exercising the non-fast-path code.
func (p *Paged[T]) AsContiguous() ([]T, uint64, bool) { return nil, 0, false }

// Flush writes back any dirty page. Callers that mutate a Paged buffer
// directly (bypassing the sample-array layer) should call this when done.
func (p *Paged[T]) Flush() { p.flush() }
