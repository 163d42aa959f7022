package microbit_test

import (
	"testing"
	"time"

	. "github.com/thegecko/microbit-serial/internal"
	"github.com/thegecko/microbit-serial/pkg/microbit"
	"gotest.tools/assert"
)

func TestReadFriendlyName(t *testing.T) {
	r := NewDummyMemoryReader(microbit.DeviceID1Addr, 0xdeadbeef)
	name, err := microbit.ReadFriendlyName(r, time.Second)
	assert.NilError(t, err)
	assert.Equal(t, name, microbit.FriendlyName("zegot"))
	assert.DeepEqual(t, r.Reads(), []uint32{microbit.DeviceID1Addr})
}

func TestReadSerialRetries(t *testing.T) {
	r := NewDummyMemoryReader(microbit.DeviceID1Addr, 42)
	r.Failures = 2
	serial, err := microbit.ReadSerial(r, time.Second)
	assert.NilError(t, err)
	assert.Equal(t, serial, uint32(42))
	assert.Equal(t, len(r.Reads()), 3)
}

func TestReadSerialGivesUp(t *testing.T) {
	r := NewDummyMemoryReader(microbit.DeviceID1Addr, 42)
	r.Failures = 10
	_, err := microbit.ReadSerial(r, time.Second)
	assert.ErrorContains(t, err, "DAP transfer fault")
	assert.Equal(t, len(r.Reads()), 3)
}

func TestReadSerialTimeout(t *testing.T) {
	r := NewDummyMemoryReader(microbit.DeviceID1Addr, 42)
	r.Delay = 200 * time.Millisecond
	_, err := microbit.ReadSerial(r, 10*time.Millisecond)
	assert.ErrorContains(t, err, "Timeout")
}

func TestReadSerialPanic(t *testing.T) {
	r := NewDummyMemoryReader(microbit.DeviceID1Addr, 42)
	r.Panic = true
	_, err := microbit.ReadFriendlyName(r, time.Second)
	assert.ErrorContains(t, err, "probe disconnected")
}

func TestReadSerialNoReader(t *testing.T) {
	_, err := microbit.ReadSerial(nil, time.Second)
	assert.ErrorContains(t, err, "no memory reader")
}

func TestReadSerialWaitsForAbandonedRead(t *testing.T) {
	r := NewDummyMemoryReader(microbit.DeviceID1Addr, 42)
	r.Delays = []time.Duration{150 * time.Millisecond}
	serial, err := microbit.ReadSerial(r, 100*time.Millisecond)
	assert.NilError(t, err)
	assert.Equal(t, serial, uint32(42))
	assert.Equal(t, len(r.Reads()), 2)
	assert.Equal(t, r.MaxInflight(), 1)
}

func TestReadSerialNeverOverlapsReads(t *testing.T) {
	r := NewDummyMemoryReader(microbit.DeviceID1Addr, 42)
	r.Delay = 50 * time.Millisecond
	_, err := microbit.ReadSerial(r, 20*time.Millisecond)
	assert.ErrorContains(t, err, "Timeout")
	assert.Equal(t, r.MaxInflight(), 1)
}
