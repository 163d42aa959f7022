package internal

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DummyMemoryReader serves 32 bit reads from a fixed memory map
type DummyMemoryReader struct {
	Memory   map[uint32]uint32
	Failures int
	Delay    time.Duration
	// Delays, when set, gives the delay of each read in turn before falling back to Delay
	Delays []time.Duration
	Panic  bool

	mutex       sync.Mutex
	reads       []uint32
	inflight    int
	maxInflight int
}

func NewDummyMemoryReader(addr uint32, value uint32) *DummyMemoryReader {
	return &DummyMemoryReader{Memory: map[uint32]uint32{addr: value}}
}

func (r *DummyMemoryReader) ReadMem32(addr uint32) (uint32, error) {
	r.mutex.Lock()
	r.reads = append(r.reads, addr)
	fail := r.Failures > 0
	if fail {
		r.Failures--
	}
	delay := r.Delay
	if len(r.Delays) > 0 {
		delay, r.Delays = r.Delays[0], r.Delays[1:]
	}
	r.inflight++
	if r.inflight > r.maxInflight {
		r.maxInflight = r.inflight
	}
	r.mutex.Unlock()
	defer func() {
		r.mutex.Lock()
		r.inflight--
		r.mutex.Unlock()
	}()
	if delay > 0 {
		time.Sleep(delay)
	}
	if r.Panic {
		panic(errors.New("probe disconnected"))
	}
	if fail {
		return 0, errors.New("DAP transfer fault")
	}
	v, ok := r.Memory[addr]
	if !ok {
		return 0, errors.Errorf("no memory at %#08x", addr)
	}
	return v, nil
}

// Reads returns every address read so far
func (r *DummyMemoryReader) Reads() []uint32 {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]uint32{}, r.reads...)
}

// MaxInflight returns the most reads that were ever running at once
func (r *DummyMemoryReader) MaxInflight() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.maxInflight
}
