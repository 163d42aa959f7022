package ble

import (
	"strings"

	"github.com/go-ble/ble"

	"github.com/thegecko/microbit-serial/pkg/microbit"
	"github.com/thegecko/microbit-serial/pkg/util"
)

// NamePrefix is the advertising name prefix of the board called name,
// or of any micro:bit when name is nil
func NamePrefix(name *microbit.FriendlyName) string {
	if name == nil {
		return util.DeviceNamePrefix
	}
	return util.DeviceNamePrefix + " [" + string(*name) + "]"
}

// NameFilter accepts advertisements whose local name starts with prefix
func NameFilter(prefix string) ble.AdvFilter {
	return func(a ble.Advertisement) bool {
		return strings.HasPrefix(a.LocalName(), prefix)
	}
}

// ParseAdvertisedName extracts the friendly name from a local name like "BBC micro:bit [zegot]"
func ParseAdvertisedName(localName string) (microbit.FriendlyName, bool) {
	rest := strings.TrimPrefix(localName, util.DeviceNamePrefix+" [")
	if rest == localName {
		return "", false
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return "", false
	}
	name := microbit.FriendlyName(rest[:end])
	if name.Validate() != nil {
		return "", false
	}
	return name, true
}
