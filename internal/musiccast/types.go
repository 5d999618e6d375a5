package musiccast

// ZoneID identifies an independently controllable output zone on the device.
type ZoneID string

const (
	ZoneMain ZoneID = "main"
	Zone2    ZoneID = "zone2"
	Zone3    ZoneID = "zone3"
	Zone4    ZoneID = "zone4"
)

// Power is a zone power target.
type Power string

const (
	PowerOn      Power = "on"
	PowerStandby Power = "standby"
	PowerToggle  Power = "toggle"
)

// Playback is a transport command for netusb and cd sources.
type Playback string

const (
	PlaybackPlay             Playback = "play"
	PlaybackStop             Playback = "stop"
	PlaybackPause            Playback = "pause"
	PlaybackPlayPause        Playback = "play_pause"
	PlaybackPrevious         Playback = "previous"
	PlaybackNext             Playback = "next"
	PlaybackFastReverseStart Playback = "fast_reverse_start"
	PlaybackFastReverseEnd   Playback = "fast_reverse_end"
	PlaybackFastForwardStart Playback = "fast_forward_start"
	PlaybackFastForwardEnd   Playback = "fast_forward_end"
)

// Band is a tuner band.
type Band string

const (
	BandAM  Band = "am"
	BandFM  Band = "fm"
	BandDAB Band = "dab"
)

// DeviceInfo is the system/getDeviceInfo response.
type DeviceInfo struct {
	ModelName           string  `json:"model_name"`
	Destination         string  `json:"destination"`
	DeviceID            string  `json:"device_id"`
	SystemID            string  `json:"system_id"`
	SystemVersion       float64 `json:"system_version"`
	APIVersion          float64 `json:"api_version"`
	NetModuleVersion    string  `json:"netmodule_version"`
	NetModuleGeneration int     `json:"netmodule_generation"`
	SerialNumber        string  `json:"serial_number"`
	CategoryCode        int     `json:"category_code"`
	OperationMode       string  `json:"operation_mode"`
	UpdateErrorCode     string  `json:"update_error_code"`
}

// Features is the system/getFeatures response. Only the commonly consumed
// portions are typed; the device reports far more than any client uses.
type Features struct {
	System struct {
		FuncList  []string `json:"func_list"`
		ZoneNum   int      `json:"zone_num"`
		InputList []struct {
			ID            string `json:"id"`
			DistributionEnable bool `json:"distribution_enable"`
			RenameEnable  bool   `json:"rename_enable"`
			PlayInfoType  string `json:"play_info_type"`
		} `json:"input_list"`
	} `json:"system"`
	Zone []struct {
		ID               string   `json:"id"`
		FuncList         []string `json:"func_list"`
		InputList        []string `json:"input_list"`
		SoundProgramList []string `json:"sound_program_list"`
		RangeStep        []struct {
			ID   string  `json:"id"`
			Min  float64 `json:"min"`
			Max  float64 `json:"max"`
			Step float64 `json:"step"`
		} `json:"range_step"`
	} `json:"zone"`
	Tuner struct {
		FuncList []string `json:"func_list"`
		Preset   struct {
			Type string `json:"type"`
			Num  int    `json:"num"`
		} `json:"preset"`
	} `json:"tuner"`
	NetUSB struct {
		FuncList []string `json:"func_list"`
		Preset   struct {
			Num int `json:"num"`
		} `json:"preset"`
	} `json:"netusb"`
}

// NetworkStatus is the system/getNetworkStatus response.
type NetworkStatus struct {
	NetworkName    string `json:"network_name"`
	Connection     string `json:"connection"`
	DHCP           bool   `json:"dhcp"`
	IPAddress      string `json:"ip_address"`
	SubnetMask     string `json:"subnet_mask"`
	DefaultGateway string `json:"default_gateway"`
	DNSServer1     string `json:"dns_server_1"`
	DNSServer2     string `json:"dns_server_2"`
	WirelessLAN    struct {
		SSID     string `json:"ssid"`
		Type     string `json:"type"`
		Key      string `json:"key"`
		Ch       int    `json:"ch"`
		Strength int    `json:"strength"`
	} `json:"wireless_lan"`
	MusicCastNetwork struct {
		Ready       bool   `json:"ready"`
		DeviceType  string `json:"device_type"`
		ChildNum    int    `json:"child_num"`
		InitialJoin bool   `json:"initial_join_running"`
	} `json:"musiccast_network"`
}

// FuncStatus is the system/getFuncStatus response.
type FuncStatus struct {
	AutoPowerStandby bool `json:"auto_power_standby"`
	SpeakerA         bool `json:"speaker_a"`
	SpeakerB         bool `json:"speaker_b"`
	Dimmer           int  `json:"dimmer"`
	IRSensor         bool `json:"ir_sensor"`
	PartyMode        bool `json:"party_mode"`
	HDMIOut1         bool `json:"hdmi_out_1"`
	HDMIOut2         bool `json:"hdmi_out_2"`
}

// LocationInfo is the system/getLocationInfo response.
type LocationInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ZoneList []string `json:"zone_list"`
}

// ZoneStatus is the <zone>/getStatus response.
type ZoneStatus struct {
	Power           string  `json:"power"`
	Sleep           int     `json:"sleep"`
	Volume          int     `json:"volume"`
	Mute            bool    `json:"mute"`
	MaxVolume       int     `json:"max_volume"`
	Input           string  `json:"input"`
	InputText       string  `json:"input_text"`
	SoundProgram    string  `json:"sound_program"`
	Enhancer        bool    `json:"enhancer"`
	ToneControl     struct {
		Mode   string `json:"mode"`
		Bass   int    `json:"bass"`
		Treble int    `json:"treble"`
	} `json:"tone_control"`
	Balance          int  `json:"balance"`
	SubwooferVolume  int  `json:"subwoofer_volume"`
	ClearVoice       bool `json:"clear_voice"`
	DistributionEnable bool `json:"distribution_enable"`
	DisableFlags     int  `json:"disable_flags"`
}

// TunerPlayInfo is the tuner/getPlayInfo response.
type TunerPlayInfo struct {
	Band string `json:"band"`
	AM   struct {
		Preset int `json:"preset"`
		Freq   int `json:"freq"`
	} `json:"am"`
	FM struct {
		Preset int `json:"preset"`
		Freq   int `json:"freq"`
	} `json:"fm"`
	DAB struct {
		Preset      int    `json:"preset"`
		ID          int    `json:"id"`
		Status      string `json:"status"`
		Freq        int    `json:"freq"`
		ServiceLabel string `json:"service_label"`
		ChLabel     string `json:"ch_label"`
	} `json:"dab"`
	RDS struct {
		ProgramType    string `json:"program_type"`
		ProgramService string `json:"program_service"`
		RadioText      string `json:"radio_text"`
	} `json:"rds"`
}

// TunerPreset is one saved tuner preset.
type TunerPreset struct {
	Band string `json:"band"`
	Num  int    `json:"number"`
	Freq int    `json:"freq"`
	Text string `json:"text"`
}

// NetPlayInfo is the netusb/getPlayInfo response.
type NetPlayInfo struct {
	Input       string `json:"input"`
	Playback    string `json:"playback"`
	Repeat      string `json:"repeat"`
	Shuffle     string `json:"shuffle"`
	PlayTime    int    `json:"play_time"`
	TotalTime   int    `json:"total_time"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	Track       string `json:"track"`
	AlbumartURL string `json:"albumart_url"`
	AlbumartID  int    `json:"albumart_id"`
	USBDeviceType string `json:"usb_devicetype"`
	Attribute   int    `json:"attribute"`
}

// NetPreset is one saved network/USB preset.
type NetPreset struct {
	Input string `json:"input"`
	Text  string `json:"text"`
}

// ListInfo is the netusb/getListInfo response.
type ListInfo struct {
	Input     string `json:"input"`
	MenuLayer int    `json:"menu_layer"`
	MaxLine   int    `json:"max_line"`
	Index     int    `json:"index"`
	MenuName  string `json:"menu_name"`
	ListInfo  []struct {
		Text        string `json:"text"`
		Subtext     string `json:"subtext"`
		ThumbnailURL string `json:"thumbnail"`
		Attribute   int    `json:"attribute"`
	} `json:"list_info"`
}

// AccountStatus is the netusb/getAccountStatus response.
type AccountStatus struct {
	ServiceList []string `json:"service_list"`
}

// CDPlayInfo is the cd/getPlayInfo response.
type CDPlayInfo struct {
	DeviceStatus string `json:"device_status"`
	Playback     string `json:"playback"`
	Repeat       string `json:"repeat"`
	Shuffle      string `json:"shuffle"`
	PlayTime     int    `json:"play_time"`
	TotalTime    int    `json:"total_time"`
	Disc         struct {
		TotalTime int `json:"total_time"`
		Tracks    int `json:"total_tracks"`
	} `json:"disc"`
	Track  int    `json:"track"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Title  string `json:"track_title"`
}

// ClockSettings is the clock/getSettings response.
type ClockSettings struct {
	AutoSync    bool   `json:"auto_sync"`
	DateAndTime string `json:"date_and_time"`
	Format      string `json:"clock_format"`
	Alarm       struct {
		AlarmOn  bool   `json:"alarm_on"`
		Volume   int    `json:"volume"`
		FadeType int    `json:"fade_type"`
		Mode     string `json:"mode"`
		OneDay   struct {
			Time     string `json:"time"`
			Beep     bool   `json:"beep"`
			Playback string `json:"playback_type"`
		} `json:"oneday"`
	} `json:"alarm"`
}
