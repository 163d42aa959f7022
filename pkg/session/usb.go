package session

import (
	"fmt"

	"github.com/thegecko/microbit-serial/pkg/util"
)

// USBDevice describes a usb device reported by the host
type USBDevice struct {
	VendorID     uint16
	ProductID    uint16
	SerialNumber string
}

// USBFilter selects usb devices by vendor and product id
type USBFilter struct {
	VendorID  uint16
	ProductID uint16
}

// MicrobitFilter matches the micro:bit interface chip
var MicrobitFilter = USBFilter{VendorID: util.MicrobitVendorID, ProductID: util.MicrobitProductID}

func (f USBFilter) Matches(d USBDevice) bool {
	return d.VendorID == f.VendorID && d.ProductID == f.ProductID
}

func (f USBFilter) UsbId() string {
	return fmt.Sprintf("%04X:%04X", f.VendorID, f.ProductID)
}
