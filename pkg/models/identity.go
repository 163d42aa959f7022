package models

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/thegecko/microbit-serial/pkg/microbit"
)

// DeviceIdentity is what a session knows about the attached board
type DeviceIdentity struct {
	SessionID string                `json:"sessionId"`
	Serial    uint32                `json:"serial"`
	Name      microbit.FriendlyName `json:"name"`
	Pattern   microbit.Pattern      `json:"pattern"`
}

// NewDeviceIdentity derives name and pairing pattern for a serial number
func NewDeviceIdentity(sessionID string, serial uint32) (*DeviceIdentity, error) {
	name := microbit.FriendlyNameOf(serial)
	pattern, err := microbit.PairPattern(name)
	if err != nil {
		return nil, err
	}
	return &DeviceIdentity{SessionID: sessionID, Serial: serial, Name: name, Pattern: pattern}, nil
}

// Data will return serialized form of struct as bytes
func (d *DeviceIdentity) Data() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns json string of data
func (d *DeviceIdentity) String() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// GetDeviceIdentityFromBytes constructs the identity from bytes and checks its name
func GetDeviceIdentityFromBytes(data []byte) (*DeviceIdentity, error) {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	var ret DeviceIdentity
	if err := dec.Decode(&ret); err != nil {
		return nil, err
	}
	if err := ret.Name.Validate(); err != nil {
		return nil, err
	}
	return &ret, nil
}
