package musiccast

import "net/url"

// CD exposes the disc transport endpoints under cd/.
type CD struct {
	d *Device
}

// GetPlayInfo returns the current disc state.
func (c *CD) GetPlayInfo() (*CDPlayInfo, error) {
	var info CDPlayInfo
	if err := c.d.transport().get("cd/getPlayInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SetPlayback sends a transport command.
func (c *CD) SetPlayback(playback Playback) error {
	q := url.Values{"playback": {string(playback)}}
	return c.d.transport().get("cd/setPlayback", q, nil)
}

// ToggleTray opens or closes the disc tray.
func (c *CD) ToggleTray() error {
	return c.d.transport().get("cd/toggleTray", nil, nil)
}

// ToggleRepeat cycles the repeat mode.
func (c *CD) ToggleRepeat() error {
	return c.d.transport().get("cd/toggleRepeat", nil, nil)
}

// ToggleShuffle cycles the shuffle mode.
func (c *CD) ToggleShuffle() error {
	return c.d.transport().get("cd/toggleShuffle", nil, nil)
}
