package musiccast

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"
)

// maxNetworkNameLength is the longest network name the device accepts.
const maxNetworkNameLength = 32

// System exposes the device-wide endpoints under system/.
type System struct {
	d *Device
}

// GetDeviceInfo returns basic device identification.
func (s *System) GetDeviceInfo() (*DeviceInfo, error) {
	var info DeviceInfo
	if err := s.d.transport().get("system/getDeviceInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetFeatures returns the capability tree the device advertises.
func (s *System) GetFeatures() (*Features, error) {
	var features Features
	if err := s.d.transport().get("system/getFeatures", nil, &features); err != nil {
		return nil, err
	}
	return &features, nil
}

// GetNetworkStatus returns the device's network configuration.
func (s *System) GetNetworkStatus() (*NetworkStatus, error) {
	var status NetworkStatus
	if err := s.d.transport().get("system/getNetworkStatus", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetFuncStatus returns the hardware function switches.
func (s *System) GetFuncStatus() (*FuncStatus, error) {
	var status FuncStatus
	if err := s.d.transport().get("system/getFuncStatus", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetLocationInfo returns the device's location name and zone layout.
func (s *System) GetLocationInfo() (*LocationInfo, error) {
	var info LocationInfo
	if err := s.d.transport().get("system/getLocationInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SetAutoPowerStandby enables or disables automatic standby.
func (s *System) SetAutoPowerStandby(enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return s.d.transport().get("system/setAutoPowerStandby", q, nil)
}

// SetNetworkName renames the device on the network. Names longer than 32
// characters are rejected locally, before any network call.
func (s *System) SetNetworkName(name string) error {
	if n := utf8.RuneCountInString(name); n > maxNetworkNameLength {
		return fmt.Errorf("network name must be at most %d characters, got %d", maxNetworkNameLength, n)
	}
	q := url.Values{"name": {name}}
	return s.d.transport().get("system/setNetworkName", q, nil)
}

// SendIRCode transmits a raw IR code through the device.
func (s *System) SendIRCode(code string) error {
	q := url.Values{"code": {code}}
	return s.d.transport().get("system/sendIrCode", q, nil)
}

// SetSpeakerA switches the A speaker terminals.
func (s *System) SetSpeakerA(enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return s.d.transport().get("system/setSpeakerA", q, nil)
}

// SetSpeakerB switches the B speaker terminals.
func (s *System) SetSpeakerB(enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return s.d.transport().get("system/setSpeakerB", q, nil)
}

// SetDimmer sets the front-panel display brightness. -1 selects the device's
// automatic mode.
func (s *System) SetDimmer(value int) error {
	q := url.Values{"value": {strconv.Itoa(value)}}
	return s.d.transport().get("system/setDimmer", q, nil)
}

// SetPartyMode toggles whole-house party mode.
func (s *System) SetPartyMode(enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return s.d.transport().get("system/setPartyMode", q, nil)
}

// SetWiredLAN reconfigures the wired interface. Pass empty strings to keep
// DHCP-assigned values.
func (s *System) SetWiredLAN(dhcp bool, ipAddress, subnetMask, defaultGateway, dns1, dns2 string) error {
	body := map[string]interface{}{
		"dhcp":            dhcp,
		"ip_address":      ipAddress,
		"subnet_mask":     subnetMask,
		"default_gateway": defaultGateway,
		"dns_server_1":    dns1,
		"dns_server_2":    dns2,
	}
	return s.d.transport().post("system/setWiredLan", body, nil)
}
