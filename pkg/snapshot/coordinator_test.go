package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	mocks "github.com/cbodonnell/lumen/mocks/github.com/cbodonnell/lumen/pkg/world"
	"github.com/cbodonnell/lumen/pkg/game"
	"github.com/cbodonnell/lumen/pkg/game/types"
	"github.com/cbodonnell/lumen/pkg/queue"
	"github.com/cbodonnell/lumen/pkg/skin"
	"github.com/cbodonnell/lumen/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncExecutor runs every task immediately on the calling goroutine.
type syncExecutor struct{}

func (syncExecutor) Execute(task queue.Task) error {
	task()
	return nil
}

// heldExecutor keeps tasks until the test releases them.
type heldExecutor struct {
	mu    sync.Mutex
	tasks []queue.Task
}

func (e *heldExecutor) Execute(task queue.Task) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks = append(e.tasks, task)
	return nil
}

func (e *heldExecutor) release() int {
	e.mu.Lock()
	tasks := e.tasks
	e.tasks = nil
	e.mu.Unlock()
	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

type failingExecutor struct{}

func (failingExecutor) Execute(queue.Task) error {
	return game.ErrLoopStopped
}

type panickingClient struct{}

func (panickingClient) Player() (world.Player, bool) {
	panic("world unloaded mid-read")
}

func (panickingClient) GameMode() (types.GameMode, bool) {
	return types.GameModeSurvival, true
}

func headAtlas(base, overlay color.NRGBA) *image.NRGBA {
	atlas := image.NewNRGBA(image.Rect(0, 0, skin.AtlasWidth, skin.ModernAtlasHeight))
	head := skin.ModernLayout[0]
	for y := 0; y < head.Base.Dy(); y++ {
		for x := 0; x < head.Base.Dx(); x++ {
			atlas.SetNRGBA(head.Base.Min.X+x, head.Base.Min.Y+y, base)
			atlas.SetNRGBA(head.Overlay.Min.X+x, head.Overlay.Min.Y+y, overlay)
		}
	}
	return atlas
}

func TestCoordinator_RequestSnapshot_withoutSkin(t *testing.T) {
	client := mocks.NewClient(t)
	player := mocks.NewPlayer(t)
	textures := mocks.NewTextureManager(t)

	client.EXPECT().Player().Return(player, true).Once()
	client.EXPECT().GameMode().Return(types.GameModeCreative, true).Once()
	player.EXPECT().Health().Return(17.5).Once()
	player.EXPECT().MaxHealth().Return(20.0).Once()

	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: syncExecutor{},
		Client:   client,
		Textures: textures,
	})

	got := coordinator.RequestSnapshot(context.Background(), false)

	assert.Equal(t, types.Snapshot{Mode: types.GameModeCreative, Health: 17.5, MaxHealth: 20}, got)
	assert.False(t, got.HasSkin())
	player.AssertNotCalled(t, "SkinTexture")
	textures.AssertNotCalled(t, "Pixels", "skin")
}

func TestCoordinator_RequestSnapshot_noPlayer(t *testing.T) {
	client := mocks.NewClient(t)
	client.EXPECT().Player().Return(nil, false).Once()

	stats := &Stats{}
	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: syncExecutor{},
		Client:   client,
		Textures: mocks.NewTextureManager(t),
		Observer: stats,
	})

	got := coordinator.RequestSnapshot(context.Background(), true)

	assert.Equal(t, types.DefaultSnapshot(), got)
	assert.Equal(t, uint64(1), stats.Count(StageNoPlayer))
}

func TestCoordinator_RequestSnapshot_modeUnavailable(t *testing.T) {
	client := mocks.NewClient(t)
	player := mocks.NewPlayer(t)
	client.EXPECT().Player().Return(player, true).Once()
	client.EXPECT().GameMode().Return(types.GameModeSpectator, false).Once()
	player.EXPECT().Health().Return(0.0).Once()
	player.EXPECT().MaxHealth().Return(0.0).Once()

	coordinator := NewCoordinator(NewCoordinatorOptions{Executor: syncExecutor{}, Client: client})

	got := coordinator.RequestSnapshot(context.Background(), false)

	assert.Equal(t, types.GameModeSurvival, got.Mode)
}

func TestCoordinator_RequestSnapshot_passesHealthThrough(t *testing.T) {
	client := mocks.NewClient(t)
	player := mocks.NewPlayer(t)
	client.EXPECT().Player().Return(player, true).Once()
	client.EXPECT().GameMode().Return(types.GameModeAdventure, true).Once()
	player.EXPECT().Health().Return(40.0).Once()
	player.EXPECT().MaxHealth().Return(20.0).Once()

	coordinator := NewCoordinator(NewCoordinatorOptions{Executor: syncExecutor{}, Client: client})

	got := coordinator.RequestSnapshot(context.Background(), false)

	assert.Equal(t, 40.0, got.Health)
	assert.Equal(t, 20.0, got.MaxHealth)
	assert.Equal(t, types.GameModeAdventure, got.Mode)
}

func TestCoordinator_RequestSnapshot_withSkin(t *testing.T) {
	client := mocks.NewClient(t)
	player := mocks.NewPlayer(t)
	textures := mocks.NewTextureManager(t)

	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 128}
	client.EXPECT().Player().Return(player, true).Once()
	client.EXPECT().GameMode().Return(types.GameModeSurvival, true).Once()
	player.EXPECT().Health().Return(20.0).Once()
	player.EXPECT().MaxHealth().Return(20.0).Once()
	player.EXPECT().SkinTexture().Return("skins/steve", true).Once()
	textures.EXPECT().Pixels(world.TextureID("skins/steve")).Return(headAtlas(red, blue), true).Once()

	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: syncExecutor{},
		Client:   client,
		Textures: textures,
	})

	got := coordinator.RequestSnapshot(context.Background(), true)

	require.True(t, got.HasSkin())
	assert.Equal(t, skin.FrontViewWidth, got.SkinWidth)
	assert.Equal(t, skin.FrontViewHeight, got.SkinHeight)

	decoded, err := png.Decode(bytes.NewReader(got.SkinPixels))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, skin.FrontViewWidth, skin.FrontViewHeight), decoded.Bounds())
	for y := 0; y < 8; y++ {
		for x := 4; x < 12; x++ {
			assert.Equal(t, blue, color.NRGBAModel.Convert(decoded.At(x, y)))
		}
	}
}

func TestCoordinator_RequestSkinSnapshot_rgb565(t *testing.T) {
	memory := world.NewMemory()
	atlas := headAtlas(color.NRGBA{R: 255, A: 255}, color.NRGBA{})
	buf := bytes.NewBuffer(nil)
	require.NoError(t, png.Encode(buf, atlas))
	memory.RegisterTexture("skin", buf.Bytes())
	memory.SetPlayer(world.NewMemoryPlayer(10, 20, "skin"))

	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: syncExecutor{},
		Client:   memory,
		Textures: memory,
	})

	got := coordinator.RequestSkinSnapshot(context.Background(), skin.FormatRGB565)

	require.Len(t, got.SkinPixels, 4+skin.FrontViewWidth*skin.FrontViewHeight*2)
	assert.Equal(t, uint16(skin.FrontViewWidth), binary.BigEndian.Uint16(got.SkinPixels[0:2]))
	assert.Equal(t, uint16(skin.FrontViewHeight), binary.BigEndian.Uint16(got.SkinPixels[2:4]))
	// pixel (4,0) is the first red pixel of the head
	offset := 4 + 4*2
	assert.Equal(t, uint16(0xF800), binary.BigEndian.Uint16(got.SkinPixels[offset:offset+2]))
}

func TestCoordinator_RequestSnapshot_skinUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(player *mocks.Player, textures *mocks.TextureManager)
		stage Stage
	}{
		{
			name: "no skin texture",
			setup: func(player *mocks.Player, textures *mocks.TextureManager) {
				player.EXPECT().SkinTexture().Return("", false).Once()
			},
			stage: StageSkinTexture,
		},
		{
			name: "texture not decoded",
			setup: func(player *mocks.Player, textures *mocks.TextureManager) {
				player.EXPECT().SkinTexture().Return("skin", true).Once()
				textures.EXPECT().Pixels(world.TextureID("skin")).Return(nil, false).Once()
			},
			stage: StageSkinPixels,
		},
		{
			name: "not a skin atlas",
			setup: func(player *mocks.Player, textures *mocks.TextureManager) {
				player.EXPECT().SkinTexture().Return("skin", true).Once()
				textures.EXPECT().Pixels(world.TextureID("skin")).Return(image.NewNRGBA(image.Rect(0, 0, 16, 16)), true).Once()
			},
			stage: StageSkinAtlas,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewClient(t)
			player := mocks.NewPlayer(t)
			textures := mocks.NewTextureManager(t)
			client.EXPECT().Player().Return(player, true).Once()
			client.EXPECT().GameMode().Return(types.GameModeCreative, true).Once()
			player.EXPECT().Health().Return(5.0).Once()
			player.EXPECT().MaxHealth().Return(20.0).Once()
			tt.setup(player, textures)

			stats := &Stats{}
			coordinator := NewCoordinator(NewCoordinatorOptions{
				Executor: syncExecutor{},
				Client:   client,
				Textures: textures,
				Observer: stats,
			})

			got := coordinator.RequestSnapshot(context.Background(), true)

			assert.Equal(t, types.Snapshot{Mode: types.GameModeCreative, Health: 5, MaxHealth: 20}, got)
			assert.Equal(t, uint64(1), stats.Count(tt.stage))
		})
	}
}

func TestCoordinator_RequestSnapshot_timeout(t *testing.T) {
	memory := world.NewMemory()
	memory.SetPlayer(world.NewMemoryPlayer(20, 20, ""))
	memory.SetGameMode(types.GameModeCreative)

	executor := &heldExecutor{}
	stats := &Stats{}
	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: executor,
		Client:   memory,
		Textures: memory,
		Observer: stats,
	})

	start := time.Now()
	got := coordinator.RequestSnapshotTimeout(context.Background(), false, 20*time.Millisecond)

	assert.Equal(t, types.DefaultSnapshot(), got)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, uint64(1), stats.Count(StageTimeout))

	// the abandoned task still runs to completion without blocking
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.Equal(t, 1, executor.release())
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("late capture blocked the executor")
	}
}

func TestCoordinator_RequestSnapshot_canceled(t *testing.T) {
	stats := &Stats{}
	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: &heldExecutor{},
		Client:   world.NewMemory(),
		Observer: stats,
		Timeout:  time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := coordinator.RequestSnapshot(ctx, true)

	assert.Equal(t, types.DefaultSnapshot(), got)
	assert.Equal(t, uint64(1), stats.Count(StageCanceled))
}

func TestCoordinator_RequestSnapshot_submitFails(t *testing.T) {
	stats := &Stats{}
	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: failingExecutor{},
		Client:   world.NewMemory(),
		Observer: stats,
	})

	got := coordinator.RequestSnapshot(context.Background(), false)

	assert.Equal(t, types.DefaultSnapshot(), got)
	assert.Equal(t, uint64(1), stats.Count(StageSubmit))
}

func TestCoordinator_RequestSnapshot_capturePanics(t *testing.T) {
	stats := &Stats{}
	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: syncExecutor{},
		Client:   panickingClient{},
		Observer: stats,
		Timeout:  time.Hour,
	})

	got := coordinator.RequestSnapshot(context.Background(), true)

	assert.Equal(t, types.DefaultSnapshot(), got)
	assert.Equal(t, uint64(1), stats.Count(StageCapture))
}

func TestCoordinator_RequestSnapshot_gameLoop(t *testing.T) {
	memory := world.NewMemory()
	atlas := headAtlas(color.NRGBA{R: 255, A: 255}, color.NRGBA{})
	buf := bytes.NewBuffer(nil)
	require.NoError(t, png.Encode(buf, atlas))
	memory.RegisterTexture("skin", buf.Bytes())
	memory.SetPlayer(world.NewMemoryPlayer(12, 20, "skin"))
	memory.SetGameMode(types.GameModeAdventure)

	loop := game.NewLoop(game.NewLoopOptions{TickInterval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = loop.Start(ctx)
	}()
	require.Eventually(t, loop.Running, time.Second, time.Millisecond)

	coordinator := NewCoordinator(NewCoordinatorOptions{
		Executor: loop,
		Client:   memory,
		Textures: memory,
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		includeSkin := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := coordinator.RequestSnapshot(ctx, includeSkin)
			assert.Equal(t, types.GameModeAdventure, got.Mode)
			assert.Equal(t, 12.0, got.Health)
			assert.Equal(t, 20.0, got.MaxHealth)
			assert.Equal(t, includeSkin, got.HasSkin())
		}()
	}
	wg.Wait()
}

func TestCoordinator_noExecutor(t *testing.T) {
	stats := &Stats{}
	coordinator := NewCoordinator(NewCoordinatorOptions{Observer: stats})

	assert.Equal(t, types.DefaultSnapshot(), coordinator.RequestSnapshot(context.Background(), true))
	assert.Equal(t, uint64(1), stats.Count(StageSubmit))
}

func TestStats(t *testing.T) {
	stats := &Stats{}
	stats.ObserveFailure(StageTimeout, errors.New("slow"))
	stats.ObserveFailure(StageTimeout, errors.New("slow"))
	stats.ObserveFailure(StageSkinEncode, errors.New("bad"))
	stats.ObserveFailure(Stage(-1), nil)
	stats.ObserveFailure(Stage(100), nil)

	assert.Equal(t, map[string]uint64{"timeout": 2, "skin_encode": 1}, stats.Counts())
	assert.Zero(t, stats.Count(Stage(100)))
}
