package musiccast

import (
	"net/url"
	"strconv"
)

// NetUSB exposes the streaming-service and USB endpoints under netusb/.
type NetUSB struct {
	d *Device
}

// GetPresetInfo returns the saved service presets. The device nests the
// result under preset_info.
func (n *NetUSB) GetPresetInfo() ([]NetPreset, error) {
	var resp struct {
		PresetInfo []NetPreset `json:"preset_info"`
	}
	if err := n.d.transport().get("netusb/getPresetInfo", nil, &resp); err != nil {
		return nil, err
	}
	return resp.PresetInfo, nil
}

// GetPlayInfo returns the current playback state.
func (n *NetUSB) GetPlayInfo() (*NetPlayInfo, error) {
	var info NetPlayInfo
	if err := n.d.transport().get("netusb/getPlayInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SetPlayback sends a transport command.
func (n *NetUSB) SetPlayback(playback Playback) error {
	q := url.Values{"playback": {string(playback)}}
	return n.d.transport().get("netusb/setPlayback", q, nil)
}

// ToggleRepeat cycles the repeat mode.
func (n *NetUSB) ToggleRepeat() error {
	return n.d.transport().get("netusb/toggleRepeat", nil, nil)
}

// ToggleShuffle cycles the shuffle mode.
func (n *NetUSB) ToggleShuffle() error {
	return n.d.transport().get("netusb/toggleShuffle", nil, nil)
}

// GetListInfo returns a page of the current browse list. input selects the
// source, index is the first row and size the page length.
func (n *NetUSB) GetListInfo(input string, index, size int) (*ListInfo, error) {
	q := url.Values{
		"input": {input},
		"index": {strconv.Itoa(index)},
		"size":  {strconv.Itoa(size)},
	}
	var info ListInfo
	if err := n.d.transport().get("netusb/getListInfo", q, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SetListControl navigates the browse list. control is one of the device's
// list operations (select, play, return); index is the target row.
func (n *NetUSB) SetListControl(control string, index int) error {
	q := url.Values{
		"type":  {control},
		"index": {strconv.Itoa(index)},
	}
	return n.d.transport().get("netusb/setListControl", q, nil)
}

// SetSearchString submits a search within the current browse context.
func (n *NetUSB) SetSearchString(text string, index int) error {
	body := map[string]interface{}{
		"string": text,
		"index":  index,
	}
	return n.d.transport().post("netusb/setSearchString", body, nil)
}

// RecallPreset recalls a service preset into a zone.
func (n *NetUSB) RecallPreset(zone ZoneID, num int) error {
	q := url.Values{
		"zone": {string(zone)},
		"num":  {strconv.Itoa(num)},
	}
	return n.d.transport().get("netusb/recallPreset", q, nil)
}

// StorePreset saves the currently playing content as preset num.
func (n *NetUSB) StorePreset(num int) error {
	q := url.Values{"num": {strconv.Itoa(num)}}
	return n.d.transport().get("netusb/storePreset", q, nil)
}

// GetAccountStatus returns which streaming services have registered accounts.
func (n *NetUSB) GetAccountStatus() (*AccountStatus, error) {
	var status AccountStatus
	if err := n.d.transport().get("netusb/getAccountStatus", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
