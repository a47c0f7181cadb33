package snapshot

import "sync/atomic"

// Stage names the step of a snapshot request that degraded.
type Stage int

const (
	// StageSubmit means the capture task could not be scheduled
	StageSubmit Stage = iota
	// StageTimeout means the game loop did not answer in time
	StageTimeout
	// StageCanceled means the caller's context ended before the answer
	StageCanceled
	// StageNoPlayer means no world is loaded
	StageNoPlayer
	// StageCapture means the capture task panicked
	StageCapture
	// StageSkinTexture means the player has no skin texture
	StageSkinTexture
	// StageSkinPixels means the skin texture has no decoded pixels
	StageSkinPixels
	// StageSkinAtlas means the skin pixels are not a valid atlas
	StageSkinAtlas
	// StageSkinEncode means the front view could not be encoded
	StageSkinEncode
)

func (s Stage) String() string {
	switch s {
	case StageSubmit:
		return "submit"
	case StageTimeout:
		return "timeout"
	case StageCanceled:
		return "canceled"
	case StageNoPlayer:
		return "no_player"
	case StageCapture:
		return "capture"
	case StageSkinTexture:
		return "skin_texture"
	case StageSkinPixels:
		return "skin_pixels"
	case StageSkinAtlas:
		return "skin_atlas"
	case StageSkinEncode:
		return "skin_encode"
	default:
		return "unknown"
	}
}

// Observer is told about every request that degraded to a default
// snapshot or an empty skin. Implementations must be safe for concurrent
// use: capture stages are reported from the game loop and wait stages
// from the requesting goroutine.
type Observer interface {
	ObserveFailure(stage Stage, err error)
}

const numStages = int(StageSkinEncode) + 1

// Stats counts failures per stage.
type Stats struct {
	counts [numStages]atomic.Uint64
}

func (s *Stats) ObserveFailure(stage Stage, _ error) {
	if int(stage) < 0 || int(stage) >= numStages {
		return
	}
	s.counts[stage].Add(1)
}

// Count returns the number of failures observed for a stage.
func (s *Stats) Count(stage Stage) uint64 {
	if int(stage) < 0 || int(stage) >= numStages {
		return 0
	}
	return s.counts[stage].Load()
}

// Counts returns the non-zero failure counts keyed by stage name.
func (s *Stats) Counts() map[string]uint64 {
	counts := make(map[string]uint64)
	for i := range s.counts {
		if n := s.counts[i].Load(); n > 0 {
			counts[Stage(i).String()] = n
		}
	}
	return counts
}
