package models

import (
	"encoding/json"
	"strings"
	"sync"
)

// RssiMap holds the last signal strength seen per advertising address
type RssiMap struct {
	data  map[string]int
	mutex sync.RWMutex
}

// NewRssiMap will return newly init struct
func NewRssiMap() *RssiMap {
	return &RssiMap{data: map[string]int{}}
}

// Set will update the map
func (rm *RssiMap) Set(addr string, rssi int) {
	addr = strings.ToUpper(addr)
	rm.mutex.Lock()
	rm.data[addr] = rssi
	rm.mutex.Unlock()
}

// Get will get from map
func (rm *RssiMap) Get(addr string) (int, bool) {
	addr = strings.ToUpper(addr)
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()
	ret, ok := rm.data[addr]
	return ret, ok
}

// GetAll returns a copy of the map
func (rm *RssiMap) GetAll() map[string]int {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()
	ret := make(map[string]int, len(rm.data))
	for k, v := range rm.data {
		ret[k] = v
	}
	return ret
}

// String returns json string of data
func (rm *RssiMap) String() string {
	b, _ := json.Marshal(rm.GetAll())
	return string(b)
}
