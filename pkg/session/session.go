package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"github.com/thegecko/microbit-serial/pkg/microbit"
	"github.com/thegecko/microbit-serial/pkg/models"
)

var (
	// ErrNotMicrobit is returned by Attach for usb devices outside the session filter
	ErrNotMicrobit = errors.New("usb device is not a micro:bit")
	// ErrAttachSuperseded is returned by Attach when the device was detached or replaced while its serial was read
	ErrAttachSuperseded = errors.New("attach superseded")
)

var logger = log.New("session")

// Session caches the identity of the currently attached micro:bit.
// The name and pattern are derived once per attachment, and the listener
// hears about changes in the order they were installed.
type Session struct {
	filter   USBFilter
	timeout  time.Duration
	listener models.DeviceListener

	// notifyMutex is taken before mutex and held from a state change until its listener call returns
	notifyMutex sync.Mutex
	mutex       sync.Mutex
	generation  uint64
	status      Status
	device      *USBDevice
	identity    *models.DeviceIdentity
}

// NewSession makes a session for micro:bit boards; timeout bounds each serial register read
func NewSession(listener models.DeviceListener, timeout time.Duration) *Session {
	return NewSessionWithFilter(MicrobitFilter, listener, timeout)
}

// NewSessionWithFilter makes a session accepting devices matched by filter
func NewSessionWithFilter(filter USBFilter, listener models.DeviceListener, timeout time.Duration) *Session {
	return &Session{filter: filter, timeout: timeout, listener: listener, status: Detached}
}

// Attach reads the serial number of dev through reader and caches its identity.
// It replaces any previously attached device. The register is read without
// holding the session lock; if dev is detached or another device is attached
// meanwhile, the result is dropped and ErrAttachSuperseded returned.
func (s *Session) Attach(dev USBDevice, reader microbit.MemoryReader) error {
	if !s.filter.Matches(dev) {
		return errors.Wrapf(ErrNotMicrobit, "usb id %04X:%04X", dev.VendorID, dev.ProductID)
	}
	gen := s.begin(dev)
	identity, err := readIdentity(reader, s.timeout)

	s.notifyMutex.Lock()
	defer s.notifyMutex.Unlock()
	s.mutex.Lock()
	if s.generation != gen {
		s.mutex.Unlock()
		return errors.Wrapf(ErrAttachSuperseded, "usb serial %s", dev.SerialNumber)
	}
	if err != nil {
		s.reset()
		s.mutex.Unlock()
		s.notifyError(err)
		s.notifyChanged(nil)
		return err
	}
	s.identity = identity
	s.status = Attached
	s.mutex.Unlock()
	logger.Info("micro:bit attached", "name", identity.Name, "usbSerial", dev.SerialNumber, "session", identity.SessionID)
	s.notifyChanged(copyIdentity(identity))
	return nil
}

// begin records dev as the pending device and starts a new generation
func (s *Session) begin(dev USBDevice) uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.reset()
	d := dev
	s.device = &d
	return s.generation
}

func readIdentity(reader microbit.MemoryReader, timeout time.Duration) (*models.DeviceIdentity, error) {
	serial, err := microbit.ReadSerial(reader, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "Attach issue")
	}
	return models.NewDeviceIdentity(uuid.New().String(), serial)
}

// Detach forgets dev if it is the attached (or attaching) device and reports whether it was
func (s *Session) Detach(dev USBDevice) bool {
	s.notifyMutex.Lock()
	defer s.notifyMutex.Unlock()
	s.mutex.Lock()
	if s.device == nil || *s.device != dev {
		s.mutex.Unlock()
		return false
	}
	if s.identity != nil {
		logger.Info("micro:bit detached", "name", s.identity.Name, "session", s.identity.SessionID)
	}
	s.reset()
	s.mutex.Unlock()
	s.notifyChanged(nil)
	return true
}

// reset clears the cached device and invalidates in flight attaches; callers hold mutex
func (s *Session) reset() {
	s.generation++
	s.device = nil
	s.identity = nil
	s.status = Detached
}

// Status returns the attachment state
func (s *Session) Status() Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.status
}

// Identity returns a copy of the cached identity, nil when detached
func (s *Session) Identity() *models.DeviceIdentity {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return copyIdentity(s.identity)
}

// Name returns the cached friendly name, nil when detached
func (s *Session) Name() *microbit.FriendlyName {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.identity == nil {
		return nil
	}
	name := s.identity.Name
	return &name
}

func (s *Session) notifyChanged(identity *models.DeviceIdentity) {
	if s.listener != nil {
		s.listener.OnDeviceChanged(identity)
	}
}

func (s *Session) notifyError(err error) {
	logger.Error("could not identify micro:bit", "err", err)
	if s.listener != nil {
		s.listener.OnInternalError(err)
	}
}

func copyIdentity(d *models.DeviceIdentity) *models.DeviceIdentity {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
