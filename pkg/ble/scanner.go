package ble

import (
	"strings"
	"sync"
	"time"

	"github.com/bradfitz/slice"
	mapset "github.com/deckarep/golang-set"
	"github.com/go-ble/ble"
	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"
	"golang.org/x/net/context"

	"github.com/thegecko/microbit-serial/pkg/microbit"
	"github.com/thegecko/microbit-serial/pkg/models"
	"github.com/thegecko/microbit-serial/pkg/util"
)

const (
	// DefaultScanDuration is how long Discover listens when no duration is given
	DefaultScanDuration = 5 * time.Second
)

var logger = log.New("ble")

// Candidate is an advertising micro:bit
type Candidate struct {
	Addr      string
	LocalName string
	Name      microbit.FriendlyName
	RSSI      int
	Services  []ble.UUID
}

// HasService reports whether the candidate advertised the service uuid
func (c Candidate) HasService(uuid string) bool {
	for _, u := range c.Services {
		if util.UuidEqualStr(u, uuid) {
			return true
		}
	}
	return false
}

// Scanner finds micro:bit boards by their advertised friendly name
type Scanner struct {
	methods coreMethods
	rssiMap *models.RssiMap
}

// NewScanner opens the default hci device
func NewScanner() (*Scanner, error) {
	return newScanner(&realCoreMethods{})
}

func newScanner(methods coreMethods) (*Scanner, error) {
	if err := methods.SetDefaultDevice(); err != nil {
		return nil, errors.Wrap(err, "SetDefaultDevice issue")
	}
	return &Scanner{methods: methods, rssiMap: models.NewRssiMap()}, nil
}

// GetRssiMap returns the signal strength of every micro:bit seen so far
func (s *Scanner) GetRssiMap() *models.RssiMap { return s.rssiMap }

// Discover listens for duration and returns the boards advertising as name
// (any micro:bit when name is nil), strongest signal first
func (s *Scanner) Discover(ctx context.Context, name *microbit.FriendlyName, duration time.Duration) ([]Candidate, error) {
	if duration <= 0 {
		duration = DefaultScanDuration
	}
	prefix := NamePrefix(name)
	// seen holds the case folded address of every matching board; latest its newest advertisement
	seen := mapset.NewSet()
	latest := map[string]Candidate{}
	mutex := sync.Mutex{}
	handle := func(a ble.Advertisement) {
		addr := a.Addr().String()
		s.rssiMap.Set(addr, a.RSSI())
		c := Candidate{Addr: addr, LocalName: a.LocalName(), RSSI: a.RSSI(), Services: a.Services()}
		c.Name, _ = ParseAdvertisedName(c.LocalName)
		key := strings.ToUpper(addr)
		mutex.Lock()
		if seen.Add(key) {
			logger.Debug("found micro:bit", "addr", addr, "name", c.LocalName, "rssi", c.RSSI)
		}
		latest[key] = c
		mutex.Unlock()
	}
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()
	err := s.methods.Scan(ctx, handle, NameFilter(prefix))
	if err != nil && !isScanDone(err) {
		return nil, errors.Wrap(err, "Scan issue")
	}
	mutex.Lock()
	candidates := make([]Candidate, 0, seen.Cardinality())
	for _, key := range seen.ToSlice() {
		candidates = append(candidates, latest[key.(string)])
	}
	mutex.Unlock()
	slice.Sort(candidates, func(i, j int) bool {
		if candidates[i].RSSI == candidates[j].RSSI {
			return candidates[i].Addr < candidates[j].Addr
		}
		return candidates[i].RSSI > candidates[j].RSSI
	})
	logger.Info("scan complete", "prefix", prefix, "found", len(candidates))
	return candidates, nil
}

func isScanDone(err error) bool {
	cause := errors.Cause(err)
	return cause == context.DeadlineExceeded || cause == context.Canceled
}
