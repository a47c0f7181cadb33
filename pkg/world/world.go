package world

import (
	"image"

	"github.com/cbodonnell/lumen/pkg/game/types"
)

// TextureID identifies a texture known to the texture manager.
type TextureID string

// Client is the live game client. Implementations are owned by the game
// loop and must only be called from it.
type Client interface {
	// Player returns the local player, or false when no world is loaded.
	Player() (Player, bool)
	// GameMode returns the local player's game mode, or false when it is unknown.
	GameMode() (types.GameMode, bool)
}

// Player is the local player entity.
type Player interface {
	Health() float64
	MaxHealth() float64
	// SkinTexture returns the texture holding the player's skin atlas,
	// or false when the player has no skin texture assigned.
	SkinTexture() (TextureID, bool)
}

// TextureManager resolves textures to pixel data.
type TextureManager interface {
	// Pixels returns the decoded pixels of a texture. It returns false when
	// the texture is unknown, not loaded yet or not backed by pixel data.
	Pixels(id TextureID) (image.Image, bool)
}
