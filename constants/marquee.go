package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the elapsed time fed to the engine after a stall
	MaxFrameDelta = 250 * time.Millisecond

	// EventChannelSize is the buffer between the event poller and the main loop
	EventChannelSize = 100
)

// Loop Defaults
const (
	// DefaultPixelsPerSecond is the natural rail speed in columns per second
	DefaultPixelsPerSecond = 10.0

	// DefaultSnapIncrement quantizes xPercent values to whole percents
	DefaultSnapIncrement = 1.0

	// MinItemWidth is the width used for zero-width items when snapping is disabled
	MinItemWidth = 1.0
)

// Interaction Timing (seconds)
const (
	// HoverEnterDuration eases the rate to zero when the pointer enters the rail
	HoverEnterDuration = 0.5

	// HoverLeaveDuration eases the rate back to the remembered direction
	HoverLeaveDuration = 0.5

	// ReleaseDuration eases the rate back after a drag release
	ReleaseDuration = 0.5

	// BurstDuration is the length of the wheel/touch rate spike
	BurstDuration = 0.2

	// BurstSettleDuration eases the rate from the burst back to unit speed
	BurstSettleDuration = 1.0

	// BurstFactor is the base signed multiplier of a wheel event
	BurstFactor = 2.0

	// BurstMultiplier scales BurstFactor into the spike rate
	BurstMultiplier = 3.0

	// MinSeekDuration keeps zero-distance seeks from dividing by zero
	MinSeekDuration = 1e-3
)

// ResizeDebounce is the quiet period after the last resize before a rebuild
const ResizeDebounce = 250 * time.Millisecond

// Rail Layout
const (
	// RailItemPadding is the column padding on each side of a label
	RailItemPadding = 2

	// RailHeight is the number of rows the rail band occupies
	RailHeight = 3

	// StatusBarHeight is the number of rows reserved at the bottom
	StatusBarHeight = 1
)

// Rail Colors
const (
	ColorRailText    = "#c8c8d0"
	ColorRailHover   = "#6fd3ff"
	ColorRailCurrent = "#ffb347"
	ColorRailBand    = "#1b1d26"
	ColorStatusText  = "#8a8fa3"
)

// HighlightBlend is how far the hover colour is mixed into the base text colour
const HighlightBlend = 0.75

// Audio Cues
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	TickSoundDuration = 60 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 45 * time.Millisecond
	TickBaseFrequency = 660.0
	// TickStepFrequency raises the tick pitch per item within an octave cycle
	TickStepFrequency = 55.0
	TickPitchCycle    = 12

	BurstSoundDuration = 200 * time.Millisecond
	BurstSoundAttack   = 10 * time.Millisecond
	BurstSoundRelease  = 120 * time.Millisecond
	BurstLowFrequency  = 180.0
	BurstHighFrequency = 720.0
	// BurstNoiseMix is the share of noise layered over the sweep
	BurstNoiseMix = 0.3
)
