package microbit

import (
	"time"

	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"github.com/thegecko/microbit-serial/pkg/util"
)

const (
	// DeviceID1Addr is the FICR DEVICE_ID[1] register (FICR base 0x10000000 + DEVICE_ID 0x064).
	// The micro:bit only uses this most significant word of the device id.
	DeviceID1Addr = 0x10000064
	// DefaultReadTimeout bounds a single register read
	DefaultReadTimeout = 2 * time.Second

	maxReadAttempts = 3
)

var logger = log.New("microbit")

// MemoryReader reads a 32 bit word from target memory, e.g. through a CMSIS-DAP probe.
// Reads made by one ReadSerial call never overlap, though a read abandoned on the
// final attempt may still be running when ReadSerial returns.
type MemoryReader interface {
	ReadMem32(addr uint32) (uint32, error)
}

// ReadSerial reads the serial number register, retrying failed or timed out reads.
// A read that timed out is waited on (up to timeout) before the next attempt is
// issued; if it is still running that attempt fails without touching the reader.
func ReadSerial(reader MemoryReader, timeout time.Duration) (uint32, error) {
	if reader == nil {
		return 0, errors.New("no memory reader")
	}
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	var serial uint32
	var abandoned <-chan struct{}
	err := util.Retry(maxReadAttempts, func(_ int) error {
		if abandoned != nil {
			if !util.WaitDone(abandoned, timeout) {
				return errors.Wrap(util.ErrTimeout, "previous read still running")
			}
			abandoned = nil
		}
		var v uint32
		done, e := util.TimeoutDone(func() error {
			var readErr error
			v, readErr = reader.ReadMem32(DeviceID1Addr)
			return readErr
		}, timeout)
		if e == util.ErrTimeout {
			abandoned = done
		}
		if e != nil {
			return e
		}
		serial = v
		return nil
	}, func(attempt int, err error) {
		logger.Warn("serial read failed, retrying", "attempt", attempt, "err", err)
	})
	if err != nil {
		return 0, errors.Wrap(err, "ReadMem32 issue")
	}
	return serial, nil
}

// ReadFriendlyName reads the serial number from the board and derives its friendly name
func ReadFriendlyName(reader MemoryReader, timeout time.Duration) (FriendlyName, error) {
	serial, err := ReadSerial(reader, timeout)
	if err != nil {
		return "", err
	}
	name := FriendlyNameOf(serial)
	if logger.IsDebug() {
		logger.Debug("decoded friendly name", "serial", serial, "name", name)
	}
	return name, nil
}
