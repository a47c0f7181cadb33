package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/lumen/pkg/game"
	"github.com/cbodonnell/lumen/pkg/game/constants"
	"github.com/cbodonnell/lumen/pkg/game/types"
	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/cbodonnell/lumen/pkg/skin"
	"github.com/cbodonnell/lumen/pkg/world"
	"github.com/google/uuid"
)

var (
	errTimeout     = errors.New("timed out waiting for the game loop")
	errNoPlayer    = errors.New("no player in the world")
	errNoTexture   = errors.New("player has no skin texture")
	errNoPixels    = errors.New("skin texture has no pixel data")
	errNoTextures  = errors.New("no texture manager")
	errNilExecutor = errors.New("no executor")
)

// Coordinator reads snapshots of the game state from any goroutine by
// running the read on the game loop and waiting a bounded time for it.
type Coordinator struct {
	executor game.Executor
	client   world.Client
	textures world.TextureManager
	timeout  time.Duration
	format   skin.Format
	observer Observer
	logger   *log.Logger
}

// NewCoordinatorOptions contains options for creating a new Coordinator.
type NewCoordinatorOptions struct {
	// Executor runs captures on the goroutine that owns Client and Textures
	Executor game.Executor
	Client   world.Client
	Textures world.TextureManager
	// Timeout defaults to constants.SnapshotTimeout
	Timeout time.Duration
	// SkinFormat is the encoding of SkinPixels in the snapshots
	SkinFormat skin.Format
	// Observer is optional
	Observer Observer
}

func NewCoordinator(opts NewCoordinatorOptions) *Coordinator {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = constants.SnapshotTimeout
	}
	return &Coordinator{
		executor: opts.Executor,
		client:   opts.Client,
		textures: opts.Textures,
		timeout:  timeout,
		format:   opts.SkinFormat,
		observer: opts.Observer,
		logger:   log.Default().Named("snapshot"),
	}
}

// RequestSnapshot captures a snapshot using the coordinator's timeout and
// skin format.
func (c *Coordinator) RequestSnapshot(ctx context.Context, includeSkin bool) types.Snapshot {
	return c.request(ctx, includeSkin, c.timeout, c.format)
}

// RequestSnapshotTimeout captures a snapshot, waiting at most timeout.
func (c *Coordinator) RequestSnapshotTimeout(ctx context.Context, includeSkin bool, timeout time.Duration) types.Snapshot {
	return c.request(ctx, includeSkin, timeout, c.format)
}

// RequestSkinSnapshot captures a snapshot including the skin encoded in
// the given format.
func (c *Coordinator) RequestSkinSnapshot(ctx context.Context, format skin.Format) types.Snapshot {
	return c.request(ctx, true, c.timeout, format)
}

// request schedules one capture on the game loop and waits for it.
// The result channel has room for exactly one snapshot, so a capture that
// finishes after the caller gave up never blocks the game loop and its
// result is dropped with the channel.
func (c *Coordinator) request(ctx context.Context, includeSkin bool, timeout time.Duration, format skin.Format) types.Snapshot {
	if timeout <= 0 {
		timeout = c.timeout
	}
	captureID := uuid.New()
	if c.executor == nil {
		c.fail(captureID, StageSubmit, errNilExecutor)
		return types.DefaultSnapshot()
	}

	result := make(chan types.Snapshot, 1)
	err := c.executor.Execute(func() {
		defer func() {
			if r := recover(); r != nil {
				c.fail(captureID, StageCapture, fmt.Errorf("panic: %v", r))
				result <- types.DefaultSnapshot()
			}
		}()
		result <- c.capture(captureID, includeSkin, format)
	})
	if err != nil {
		c.fail(captureID, StageSubmit, err)
		return types.DefaultSnapshot()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case snapshot := <-result:
		return snapshot
	case <-timer.C:
		c.fail(captureID, StageTimeout, fmt.Errorf("%w after %s", errTimeout, timeout))
		return types.DefaultSnapshot()
	case <-ctx.Done():
		c.fail(captureID, StageCanceled, ctx.Err())
		return types.DefaultSnapshot()
	}
}

// capture reads the game state. It must only run on the game loop.
func (c *Coordinator) capture(captureID uuid.UUID, includeSkin bool, format skin.Format) types.Snapshot {
	if c.client == nil {
		c.fail(captureID, StageNoPlayer, errNoPlayer)
		return types.DefaultSnapshot()
	}
	player, ok := c.client.Player()
	if !ok || player == nil {
		c.fail(captureID, StageNoPlayer, errNoPlayer)
		return types.DefaultSnapshot()
	}

	mode, ok := c.client.GameMode()
	if !ok {
		mode = types.GameModeSurvival
	}

	skinData := types.EmptySkin()
	if includeSkin {
		skinData = c.readSkin(captureID, player, format)
	}

	c.logger.Trace("Captured snapshot %s", captureID)
	return types.NewSnapshot(mode, player.Health(), player.MaxHealth(), skinData)
}

// readSkin composes and encodes the player's front view. Every failure
// yields an empty skin and leaves the rest of the snapshot intact.
func (c *Coordinator) readSkin(captureID uuid.UUID, player world.Player, format skin.Format) types.SkinData {
	textureID, ok := player.SkinTexture()
	if !ok {
		c.fail(captureID, StageSkinTexture, errNoTexture)
		return types.EmptySkin()
	}
	if c.textures == nil {
		c.fail(captureID, StageSkinPixels, errNoTextures)
		return types.EmptySkin()
	}
	atlas, ok := c.textures.Pixels(textureID)
	if !ok || atlas == nil {
		c.fail(captureID, StageSkinPixels, fmt.Errorf("%w: %s", errNoPixels, textureID))
		return types.EmptySkin()
	}
	if err := skin.ValidateAtlas(atlas); err != nil {
		c.fail(captureID, StageSkinAtlas, err)
		return types.EmptySkin()
	}

	front := skin.ComposeFrontView(atlas)
	pixels, err := skin.Encode(front, format)
	if err != nil {
		c.fail(captureID, StageSkinEncode, err)
		return types.EmptySkin()
	}

	bounds := front.Bounds()
	return types.SkinData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: pixels,
	}
}

func (c *Coordinator) fail(captureID uuid.UUID, stage Stage, err error) {
	c.logger.Debug("Snapshot %s degraded at %s: %v", captureID, stage, err)
	if c.observer != nil {
		c.observer.ObserveFailure(stage, err)
	}
}
