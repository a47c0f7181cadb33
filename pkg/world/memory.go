package world

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/cbodonnell/lumen/pkg/game/types"
	"github.com/cbodonnell/lumen/pkg/log"
)

// MemoryPlayer is a player held in memory.
type MemoryPlayer struct {
	health    float64
	maxHealth float64
	skin      TextureID
}

// NewMemoryPlayer creates a player with the given stats and skin texture.
// An empty skin means the player has no skin texture.
func NewMemoryPlayer(health, maxHealth float64, skin TextureID) *MemoryPlayer {
	return &MemoryPlayer{
		health:    health,
		maxHealth: maxHealth,
		skin:      skin,
	}
}

func (p *MemoryPlayer) Health() float64 {
	return p.health
}

func (p *MemoryPlayer) MaxHealth() float64 {
	return p.maxHealth
}

func (p *MemoryPlayer) SetHealth(health float64) {
	p.health = health
}

func (p *MemoryPlayer) SkinTexture() (TextureID, bool) {
	return p.skin, p.skin != ""
}

// Memory is an in-memory game client and texture manager. Like the game
// state it stands in for, it is not safe for concurrent use and is only
// touched from the game loop.
type Memory struct {
	player   *MemoryPlayer
	mode     types.GameMode
	hasMode  bool
	textures map[TextureID][]byte
}

func NewMemory() *Memory {
	return &Memory{
		textures: make(map[TextureID][]byte),
	}
}

func (m *Memory) Player() (Player, bool) {
	if m.player == nil {
		return nil, false
	}
	return m.player, true
}

// SetPlayer sets the local player. A nil player leaves the world.
func (m *Memory) SetPlayer(player *MemoryPlayer) {
	m.player = player
}

func (m *Memory) GameMode() (types.GameMode, bool) {
	return m.mode, m.hasMode
}

func (m *Memory) SetGameMode(mode types.GameMode) {
	m.mode = mode
	m.hasMode = true
}

func (m *Memory) ClearGameMode() {
	m.hasMode = false
}

// RegisterTexture stores PNG encoded texture data under id.
func (m *Memory) RegisterTexture(id TextureID, data []byte) {
	m.textures[id] = data
}

// LoadSkinFile reads a PNG skin from disk and registers it under id.
func (m *Memory) LoadSkinFile(id TextureID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read skin file: %v", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to decode skin file %s: %v", path, err)
	}
	m.RegisterTexture(id, data)
	return nil
}

// Pixels decodes the texture on every call.
func (m *Memory) Pixels(id TextureID) (image.Image, bool) {
	data, ok := m.textures[id]
	if !ok {
		return nil, false
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		log.Debug("Failed to decode texture %s: %v", id, err)
		return nil, false
	}
	return img, true
}
