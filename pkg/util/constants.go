package util

const (
	// MicrobitVendorID is the USB vendor id of the micro:bit interface chip (ARM DAPLink)
	MicrobitVendorID = 0x0D28
	// MicrobitProductID is the USB product id of the micro:bit interface chip
	MicrobitProductID = 0x0204
	// DeviceNamePrefix is the start of every micro:bit bluetooth advertising name
	DeviceNamePrefix = "BBC micro:bit"
	// AccelerometerServiceUUID represents UUID for the micro:bit accelerometer ble service
	AccelerometerServiceUUID = "E95D0753-251D-470A-A062-FA1922DFA9A8"
	// LEDServiceUUID represents UUID for the micro:bit LED ble service
	LEDServiceUUID = "E95DD91D-251D-470A-A062-FA1922DFA9A8"
	// LEDMatrixStateUUID represents UUID for ble characteristic which reads and writes the LED matrix
	LEDMatrixStateUUID = "E95D7B77-251D-470A-A062-FA1922DFA9A8"
)
