package starfield

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"starfield/hal"
)

// starBytes is the size of one packed star record: x, y, z as little-endian int16.
const starBytes = 6

// Pool is a fixed number of stars packed into one allocated block.
type Pool struct {
	mem hal.Memory
	buf []byte
	n   int
	rng *rand.Rand
}

// NewPool allocates count stars from mem and resets each one with rng.
func NewPool(mem hal.Memory, count int, rng *rand.Rand) (*Pool, error) {
	if count < 0 {
		return nil, fmt.Errorf("star pool: invalid count %d", count)
	}
	size := count * starBytes
	buf, err := mem.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: star pool (%d bytes): %w", ErrAllocation, size, err)
	}
	if len(buf) < size {
		mem.Free(buf)
		return nil, fmt.Errorf("%w: star pool: got %d of %d bytes", ErrAllocation, len(buf), size)
	}

	p := &Pool{mem: mem, buf: buf[:size], n: count, rng: rng}
	for i := 0; i < p.n; i++ {
		var s Star
		p.Reset(&s)
		p.store(i, s)
	}
	return p, nil
}

// Len returns the number of stars in the pool.
func (p *Pool) Len() int { return p.n }

// Reset draws a fresh position for s.
func (p *Pool) Reset(s *Star) {
	s.X = int16(p.rng.IntN(spreadX) - spreadX/2)
	s.Y = int16(p.rng.IntN(spreadY) - spreadY/2)
	s.Z = int16(p.rng.IntN(ZMax))
}

// At returns star i. ok is false when i is out of range.
func (p *Pool) At(i int) (s Star, ok bool) {
	if i < 0 || i >= p.n || p.buf == nil {
		return Star{}, false
	}
	return p.load(i), true
}

// Put overwrites star i. Out of range indexes are ignored.
func (p *Pool) Put(i int, s Star) {
	if i < 0 || i >= p.n || p.buf == nil {
		return
	}
	p.store(i, s)
}

// Each calls fn for every star in order; changes fn makes are kept.
// s points at the decoded record, which is encoded back into the pool's
// block as soon as fn returns.
func (p *Pool) Each(fn func(i int, s *Star)) {
	if p.buf == nil {
		return
	}
	for i := 0; i < p.n; i++ {
		s := p.load(i)
		fn(i, &s)
		p.store(i, s)
	}
}

// Release returns the pool's block to memory. Further use sees an empty pool.
func (p *Pool) Release() {
	if p.buf == nil {
		return
	}
	p.mem.Free(p.buf)
	p.buf = nil
}

func (p *Pool) load(i int) Star {
	rec := p.buf[i*starBytes : i*starBytes+starBytes]
	return Star{
		X: int16(binary.LittleEndian.Uint16(rec[0:])),
		Y: int16(binary.LittleEndian.Uint16(rec[2:])),
		Z: int16(binary.LittleEndian.Uint16(rec[4:])),
	}
}

func (p *Pool) store(i int, s Star) {
	rec := p.buf[i*starBytes : i*starBytes+starBytes]
	binary.LittleEndian.PutUint16(rec[0:], uint16(s.X))
	binary.LittleEndian.PutUint16(rec[2:], uint16(s.Y))
	binary.LittleEndian.PutUint16(rec[4:], uint16(s.Z))
}
