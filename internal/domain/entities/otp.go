package entities

import "time"

// OTP rules.
const (
	OTPMinLength      = 4
	OTPMaxLength      = 10
	OTPDefaultLength  = 6
	OTPMaxAttempts    = 3
	OTPInputWindow    = 25 * time.Second
	OTPHurryThreshold = 5 * time.Second
	OTPLevelUpStreak  = 3 // consecutive successes per level
)

// OTPPreset configures one OTP difficulty.
type OTPPreset struct {
	Length      int
	DisplayTime time.Duration
}

// OTPPresets are the OTP difficulty settings.
var OTPPresets = map[Difficulty]OTPPreset{
	DifficultyEasy:   {Length: 4, DisplayTime: 5000 * time.Millisecond},
	DifficultyMedium: {Length: 6, DisplayTime: 3000 * time.Millisecond},
	DifficultyHard:   {Length: 8, DisplayTime: 3000 * time.Millisecond},
	DifficultyExpert: {Length: 10, DisplayTime: 2000 * time.Millisecond},
}

// OTPSettings holds the OTP game parameters chosen by the player.
type OTPSettings struct {
	Length      int           `validate:"min=4,max=10"`
	DisplayTime time.Duration `validate:"gt=0"`
}

// DefaultOTPSettings returns the medium preset.
func DefaultOTPSettings() OTPSettings {
	p := OTPPresets[DifficultyMedium]
	return OTPSettings{Length: p.Length, DisplayTime: p.DisplayTime}
}

// OTPStats is the persisted OTP progress of a player.
type OTPStats struct {
	Score        int  `json:"score"`
	Streak       int  `json:"streak"`
	Level        int  `json:"level"`
	SoundEnabled bool `json:"soundEnabled"`
}

// NewOTPStats returns the initial OTP progress.
func NewOTPStats() OTPStats {
	return OTPStats{Level: 1, SoundEnabled: true}
}
