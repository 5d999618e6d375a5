package musiccast

import (
	"net/url"
	"strconv"
)

// Clock exposes the clock and alarm endpoints under clock/.
type Clock struct {
	d *Device
}

// GetSettings returns the clock and alarm configuration.
func (c *Clock) GetSettings() (*ClockSettings, error) {
	var settings ClockSettings
	if err := c.d.transport().get("clock/getSettings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetAutoSync enables or disables network time synchronization.
func (c *Clock) SetAutoSync(enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return c.d.transport().get("clock/setAutoSync", q, nil)
}

// SetDateAndTime sets the clock. dateTime uses the device's YYMMDDhhmmss
// format.
func (c *Clock) SetDateAndTime(dateTime string) error {
	q := url.Values{"date_time": {dateTime}}
	return c.d.transport().get("clock/setDateAndTime", q, nil)
}

// SetClockFormat switches between 12-hour and 24-hour display. format is
// "12h" or "24h".
func (c *Clock) SetClockFormat(format string) error {
	q := url.Values{"format": {format}}
	return c.d.transport().get("clock/setClockFormat", q, nil)
}

// AlarmSettings configures the wake alarm for SetAlarmSettings. Zero-valued
// fields are omitted so partial updates leave the rest untouched.
type AlarmSettings struct {
	AlarmOn  *bool  `json:"alarm_on,omitempty"`
	Volume   *int   `json:"volume,omitempty"`
	FadeType int    `json:"fade_type,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Time     string `json:"time,omitempty"`
	Beep     *bool  `json:"beep,omitempty"`
	Playback string `json:"playback_type,omitempty"`
}

// SetAlarmSettings updates the wake alarm.
func (c *Clock) SetAlarmSettings(settings AlarmSettings) error {
	return c.d.transport().post("clock/setAlarmSettings", settings, nil)
}
