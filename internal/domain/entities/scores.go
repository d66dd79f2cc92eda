package entities

import "time"

// BackupVersion is written into every backup blob.
const BackupVersion = "1.0"

// BestScores holds the highest final score ever reached per mode.
type BestScores map[Mode]int

// NewBestScores returns zeroed best scores for every scored mode.
func NewBestScores() BestScores {
	bs := make(BestScores, len(ScoredModes))
	for _, m := range ScoredModes {
		bs[m] = 0
	}
	return bs
}

// Record stores score for mode if it strictly exceeds the current best.
// It reports whether the best score changed.
func (bs BestScores) Record(mode Mode, score int) bool {
	if score <= bs[mode] {
		return false
	}
	bs[mode] = score
	return true
}

// Clone returns an independent copy.
func (bs BestScores) Clone() BestScores {
	out := make(BestScores, len(bs))
	for k, v := range bs {
		out[k] = v
	}
	return out
}

// Backup is a snapshot of the player's contacts and best scores.
type Backup struct {
	Contacts   []Contact  `json:"contacts"`
	BestScores BestScores `json:"bestScores,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
	Version    string     `json:"version"`
}

// NewBackup creates a backup stamped with now.
func NewBackup(contacts []Contact, scores BestScores, now time.Time) *Backup {
	return &Backup{
		Contacts:   append([]Contact(nil), contacts...),
		BestScores: scores.Clone(),
		Timestamp:  now.UTC(),
		Version:    BackupVersion,
	}
}
