package model

import "time"

// Shared defaults used by the binary and its subsystems.
const (
	DefaultTickInterval   = time.Second
	DefaultUplinkInterval = 2 * time.Second
	DefaultAPIAddr        = "0.0.0.0:3000"
	DefaultUplinkTopic    = "adas/display/state"
	DefaultSkin           = "default"

	// SpeedMinKph and SpeedMaxKph bound the simulated cruise speed,
	// inclusive on both ends.
	SpeedMinKph = 60
	SpeedMaxKph = 120

	// UplinkSyncWord tags every uplink frame, matching the radio link
	// the frame format descends from.
	UplinkSyncWord byte = 0xF3
)
