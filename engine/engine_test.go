package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/ground"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func floor() ground.Colliders {
	return ground.NewColliders(ground.Box{Min: mgl32.Vec3{-50, -1, -50}, Max: mgl32.Vec3{50, 0, 50}})
}

func walker(shared settings.Shared, x, y float32) character.Character {
	in := character.NewManualInput()
	in.SetAxes(x, y)
	return character.NewCharacter(in, floor(), character.WithShared(shared))
}

func TestRegistry(t *testing.T) {
	e := NewEngine()
	a := walker(e.Shared(), 0, 1)
	b := walker(e.Shared(), 1, 0)

	e.AddCharacter(a)
	e.AddCharacter(b)
	assert.Len(t, e.Characters(), 2)
	assert.Equal(t, a, e.Character(a.ID()))

	chars := e.Characters()
	delete(chars, a.ID())
	assert.Len(t, e.Characters(), 2)

	e.RemoveCharacter(a.ID())
	assert.Nil(t, e.Character(a.ID()))
	assert.Len(t, e.Characters(), 1)

	e.RemoveCharacter(a.ID())
	assert.Len(t, e.Characters(), 1)
}

func TestStepTicksEveryCharacter(t *testing.T) {
	for _, workers := range []int{1, 4} {
		shared := settings.NewShared()
		chars := []character.Character{
			walker(shared, 0, 1),
			walker(shared, 1, 0),
			walker(shared, 0, -1),
			walker(shared, -1, 0),
			walker(shared, 0, 0),
		}
		options := []EngineBuilderOption{WithWorkers(workers), WithShared(shared)}
		for _, c := range chars {
			options = append(options, WithCharacter(c))
		}
		e := NewEngine(options...)

		var results map[string]mgl32.Vec3
		for i := 0; i < 10; i++ {
			out := e.Step(0.02)
			require.Len(t, out, len(chars))
			results = make(map[string]mgl32.Vec3, len(out))
			for id, res := range out {
				results[id.String()] = res.Position
			}
		}

		assert.Less(t, results[chars[0].ID().String()].Z(), float32(0), "workers=%d", workers)
		assert.Greater(t, results[chars[1].ID().String()].X(), float32(0), "workers=%d", workers)
		assert.Greater(t, results[chars[2].ID().String()].Z(), float32(0), "workers=%d", workers)
		assert.Less(t, results[chars[3].ID().String()].X(), float32(0), "workers=%d", workers)
		assert.Equal(t, mgl32.Vec3{}, results[chars[4].ID().String()], "workers=%d", workers)
	}
}

func TestStepWithoutCharacters(t *testing.T) {
	e := NewEngine(WithWorkers(2))
	assert.Empty(t, e.Step(0.02))
}

func TestWithConfig(t *testing.T) {
	e := NewEngine(WithConfig(config.EngineConfig{TickRate: 100, Workers: 3}))
	assert.Equal(t, 10*time.Millisecond, e.TickRate())

	e = NewEngine(WithConfig(config.EngineConfig{}))
	assert.Equal(t, 20*time.Millisecond, e.TickRate())
}

func TestSetTickRate(t *testing.T) {
	e := NewEngine(WithTickRate(25))
	assert.Equal(t, 40*time.Millisecond, e.TickRate())

	e.SetTickRate(200)
	assert.Equal(t, 5*time.Millisecond, e.TickRate())

	e.SetTickRate(0)
	assert.Equal(t, 20*time.Millisecond, e.TickRate())
}

func TestRunHeadlessUntilQuit(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	shared := settings.NewShared()
	c := walker(shared, 0, 1)
	e := NewEngine(WithTickRate(200), WithShared(shared), WithCharacter(c), WithLogger(zap.New(core)))

	var ticks atomic.Int32
	e.SetTickCallback(func(dt float32) {
		assert.InDelta(t, 0.005, dt, 1e-6)
		ticks.Add(1)
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	assert.Eventually(t, func() bool { return ticks.Load() >= 5 }, 2*time.Second, 5*time.Millisecond)
	assert.Less(t, c.Body().Position().Z(), float32(0))
	assert.True(t, shared.Moving())

	e.Quit()
	e.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}

	assert.Equal(t, 1, logs.FilterMessage("engine starting").Len())
	assert.Equal(t, 1, logs.FilterMessage("engine stopped").Len())
}

func TestWithConfigSeedsSharedSensitivity(t *testing.T) {
	shared := settings.NewShared()
	e := NewEngine(WithConfig(config.EngineConfig{SensitivityMultiplier: 2.5}), WithShared(shared))
	assert.Equal(t, float32(2.5), shared.SensitivityMultiplier())
	assert.Equal(t, shared, e.Shared())

	e = NewEngine(WithConfig(config.EngineConfig{}))
	assert.Equal(t, float32(1), e.Shared().SensitivityMultiplier())
}

func TestStepAfterRunReturnsTicksInline(t *testing.T) {
	shared := settings.NewShared()
	a := walker(shared, 0, 1)
	b := walker(shared, 1, 0)
	e := NewEngine(WithTickRate(200), WithWorkers(2), WithShared(shared), WithCharacter(a), WithCharacter(b))

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	e.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}

	stepped := make(chan map[uuid.UUID]character.TickResult, 1)
	go func() { stepped <- e.Step(0.02) }()
	select {
	case out := <-stepped:
		assert.Len(t, out, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("Step blocked after Run returned")
	}
}
