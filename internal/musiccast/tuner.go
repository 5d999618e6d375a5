package musiccast

import (
	"net/url"
	"strconv"
)

// Tuner exposes the AM/FM/DAB endpoints under tuner/.
type Tuner struct {
	d *Device
}

// GetPresetInfo returns the saved presets for a band. The device nests the
// result under preset_info.
func (t *Tuner) GetPresetInfo(band Band) ([]TunerPreset, error) {
	q := url.Values{"band": {string(band)}}
	var resp struct {
		PresetInfo []TunerPreset `json:"preset_info"`
	}
	if err := t.d.transport().get("tuner/getPresetInfo", q, &resp); err != nil {
		return nil, err
	}
	return resp.PresetInfo, nil
}

// GetPlayInfo returns the current tuner state.
func (t *Tuner) GetPlayInfo() (*TunerPlayInfo, error) {
	var info TunerPlayInfo
	if err := t.d.transport().get("tuner/getPlayInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SetBand switches the active band.
func (t *Tuner) SetBand(band Band) error {
	q := url.Values{"band": {string(band)}}
	return t.d.transport().get("tuner/setBand", q, nil)
}

// SetFreq tunes to a frequency. tuning is one of the device's tuning modes
// (direct, up, down, auto_up, auto_down); freq is in kHz and only used with
// direct tuning.
func (t *Tuner) SetFreq(band Band, tuning string, freq int) error {
	q := url.Values{
		"band":   {string(band)},
		"tuning": {tuning},
		"num":    {strconv.Itoa(freq)},
	}
	return t.d.transport().get("tuner/setFreq", q, nil)
}

// RecallPreset recalls a stored preset into a zone.
func (t *Tuner) RecallPreset(zone ZoneID, band Band, num int) error {
	q := url.Values{
		"zone": {string(zone)},
		"band": {string(band)},
		"num":  {strconv.Itoa(num)},
	}
	return t.d.transport().get("tuner/recallPreset", q, nil)
}

// SwitchPreset steps to the next or previous preset. dir is "next" or
// "previous".
func (t *Tuner) SwitchPreset(dir string) error {
	q := url.Values{"dir": {dir}}
	return t.d.transport().get("tuner/switchPreset", q, nil)
}

// StorePreset saves the currently tuned station as preset num.
func (t *Tuner) StorePreset(num int) error {
	q := url.Values{"num": {strconv.Itoa(num)}}
	return t.d.transport().get("tuner/storePreset", q, nil)
}
