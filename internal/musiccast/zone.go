package musiccast

import (
	"net/url"
	"strconv"
)

// Zone exposes the per-zone endpoints. Zone ids are path segments, so one
// Zone value is bound to a single output zone.
type Zone struct {
	d  *Device
	id ZoneID
}

// ID returns the zone this client is bound to.
func (z *Zone) ID() ZoneID {
	return z.id
}

func (z *Zone) path(op string) string {
	return string(z.id) + "/" + op
}

// GetStatus returns the zone's full playback state.
func (z *Zone) GetStatus() (*ZoneStatus, error) {
	var status ZoneStatus
	if err := z.d.transport().get(z.path("getStatus"), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetSoundProgramList returns the sound programs the zone supports. The
// device nests the result under sound_program_list.
func (z *Zone) GetSoundProgramList() ([]string, error) {
	var resp struct {
		SoundProgramList []string `json:"sound_program_list"`
	}
	if err := z.d.transport().get(z.path("getSoundProgramList"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.SoundProgramList, nil
}

// SetPower sets the zone power state.
func (z *Zone) SetPower(power Power) error {
	q := url.Values{"power": {string(power)}}
	return z.d.transport().get(z.path("setPower"), q, nil)
}

// SetSleep sets the sleep timer in minutes. Zero cancels it.
func (z *Zone) SetSleep(minutes int) error {
	q := url.Values{"sleep": {strconv.Itoa(minutes)}}
	return z.d.transport().get(z.path("setSleep"), q, nil)
}

// SetVolume sets an absolute volume level.
func (z *Zone) SetVolume(volume int) error {
	q := url.Values{"volume": {strconv.Itoa(volume)}}
	return z.d.transport().get(z.path("setVolume"), q, nil)
}

// VolumeUp raises the volume by step device units.
func (z *Zone) VolumeUp(step int) error {
	q := url.Values{"volume": {"up"}, "step": {strconv.Itoa(step)}}
	return z.d.transport().get(z.path("setVolume"), q, nil)
}

// VolumeDown lowers the volume by step device units.
func (z *Zone) VolumeDown(step int) error {
	q := url.Values{"volume": {"down"}, "step": {strconv.Itoa(step)}}
	return z.d.transport().get(z.path("setVolume"), q, nil)
}

// SetMute mutes or unmutes the zone.
func (z *Zone) SetMute(mute bool) error {
	q := url.Values{"enable": {strconv.FormatBool(mute)}}
	return z.d.transport().get(z.path("setMute"), q, nil)
}

// SetInput selects the zone's input source.
func (z *Zone) SetInput(input string) error {
	q := url.Values{"input": {input}}
	return z.d.transport().get(z.path("setInput"), q, nil)
}

// PrepareInputChange tells the device an input switch is imminent so it can
// ready the source before SetInput.
func (z *Zone) PrepareInputChange(input string) error {
	q := url.Values{"input": {input}}
	return z.d.transport().get(z.path("prepareInputChange"), q, nil)
}

// SetSoundProgram selects a DSP sound program.
func (z *Zone) SetSoundProgram(program string) error {
	q := url.Values{"program": {program}}
	return z.d.transport().get(z.path("setSoundProgram"), q, nil)
}

// SetEnhancer toggles the compressed-music enhancer.
func (z *Zone) SetEnhancer(enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return z.d.transport().get(z.path("setEnhancer"), q, nil)
}

// SetToneControl sets bass and treble in device units.
func (z *Zone) SetToneControl(mode string, bass, treble int) error {
	q := url.Values{
		"mode":   {mode},
		"bass":   {strconv.Itoa(bass)},
		"treble": {strconv.Itoa(treble)},
	}
	return z.d.transport().get(z.path("setToneControl"), q, nil)
}

// SetBalance shifts the left/right balance. Negative values favor left.
func (z *Zone) SetBalance(value int) error {
	q := url.Values{"value": {strconv.Itoa(value)}}
	return z.d.transport().get(z.path("setBalance"), q, nil)
}

// SetSubwooferVolume sets the subwoofer trim in device units.
func (z *Zone) SetSubwooferVolume(volume int) error {
	q := url.Values{"volume": {strconv.Itoa(volume)}}
	return z.d.transport().get(z.path("setSubwooferVolume"), q, nil)
}

// SetClearVoice toggles dialogue emphasis.
func (z *Zone) SetClearVoice(enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return z.d.transport().get(z.path("setClearVoice"), q, nil)
}
