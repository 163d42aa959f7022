package ble

import (
	"testing"

	"gotest.tools/assert"

	. "github.com/thegecko/microbit-serial/internal"
	"github.com/thegecko/microbit-serial/pkg/microbit"
)

func TestNamePrefix(t *testing.T) {
	assert.Equal(t, NamePrefix(nil), "BBC micro:bit")
	name := microbit.FriendlyName("zegot")
	assert.Equal(t, NamePrefix(&name), "BBC micro:bit [zegot]")
}

func TestNameFilter(t *testing.T) {
	name := microbit.FriendlyName("zegot")
	f := NameFilter(NamePrefix(&name))
	assert.Check(t, f(NewDummyAdv("a", "BBC micro:bit [zegot]", 0)))
	assert.Check(t, !f(NewDummyAdv("a", "BBC micro:bit [vazav]", 0)))
	assert.Check(t, !f(NewDummyAdv("a", "", 0)))
}

func TestParseAdvertisedName(t *testing.T) {
	name, ok := ParseAdvertisedName("BBC micro:bit [zegot]")
	assert.Check(t, ok)
	assert.Equal(t, name, microbit.FriendlyName("zegot"))
	for _, bad := range []string{"BBC micro:bit", "BBC micro:bit [zegot", "BBC micro:bit [zzzzz]", "micro:bit [zegot]"} {
		_, ok = ParseAdvertisedName(bad)
		assert.Check(t, !ok, bad)
	}
}
