package types

// SkinData is an encoded front view of the player's skin.
type SkinData struct {
	Width  int
	Height int
	Pixels []byte
}

// EmptySkin is the skin data of a snapshot without a skin.
func EmptySkin() SkinData {
	return SkinData{}
}

// IsEmpty returns true if any of the skin fields is unset.
func (s SkinData) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0 || len(s.Pixels) == 0
}

// Snapshot is the state of the local player at the time of one request.
// Snapshots are values and are never modified after NewSnapshot returns.
type Snapshot struct {
	Mode      GameMode
	Health    float64
	MaxHealth float64
	// SkinWidth, SkinHeight and SkinPixels are either all set or all zero
	SkinWidth  int
	SkinHeight int
	SkinPixels []byte
}

// DefaultSnapshot is returned whenever the player state cannot be read.
func DefaultSnapshot() Snapshot {
	return Snapshot{Mode: GameModeSurvival}
}

// NewSnapshot creates a snapshot. Incomplete skin data is dropped entirely
// so a snapshot never carries a partial skin.
func NewSnapshot(mode GameMode, health, maxHealth float64, skin SkinData) Snapshot {
	snapshot := Snapshot{
		Mode:      mode,
		Health:    health,
		MaxHealth: maxHealth,
	}
	if !skin.IsEmpty() {
		snapshot.SkinWidth = skin.Width
		snapshot.SkinHeight = skin.Height
		snapshot.SkinPixels = skin.Pixels
	}
	return snapshot
}

// HasSkin returns true if the snapshot carries skin data.
func (s Snapshot) HasSkin() bool {
	return len(s.SkinPixels) > 0
}

// Skin returns the skin fields of the snapshot.
func (s Snapshot) Skin() SkinData {
	return SkinData{
		Width:  s.SkinWidth,
		Height: s.SkinHeight,
		Pixels: s.SkinPixels,
	}
}
