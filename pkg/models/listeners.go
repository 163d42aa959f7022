package models

// DeviceListener is told when the attached micro:bit changes.
// A nil identity means no board is attached.
type DeviceListener interface {
	OnDeviceChanged(*DeviceIdentity)
	OnInternalError(error)
}
