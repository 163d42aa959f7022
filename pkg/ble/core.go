package ble

import (
	"github.com/go-ble/ble"
	"github.com/go-ble/ble/linux"
	"github.com/pkg/errors"
	"golang.org/x/net/context"

	"github.com/thegecko/microbit-serial/pkg/util"
)

type coreMethods interface {
	SetDefaultDevice() error
	Scan(context.Context, ble.AdvHandler, ble.AdvFilter) error
}

type realCoreMethods struct{}

func (bc *realCoreMethods) Scan(ctx context.Context, h ble.AdvHandler, f ble.AdvFilter) error {
	return util.CatchErrs(func() error {
		return ble.Scan(ble.WithSigHandler(context.WithCancel(ctx)), true, h, f)
	})
}

func (bc *realCoreMethods) SetDefaultDevice() error {
	device, err := linux.NewDevice()
	if err != nil {
		return errors.Wrap(err, "newLinuxDevice issue")
	}
	ble.SetDefaultDevice(device)
	return nil
}
