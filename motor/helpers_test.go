package motor

import (
	"io"
	"log/slog"
	"testing"

	"github.com/automoto/playermotor/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const step = 1.0 / 60

type fakeResolver struct {
	grounded bool
	moves    []mgl64.Vec3
}

func (f *fakeResolver) IsGrounded() bool      { return f.grounded }
func (f *fakeResolver) Move(delta mgl64.Vec3) { f.moves = append(f.moves, delta) }
func (f *fakeResolver) reset()                { f.moves = f.moves[:0] }

type fakeAnim struct {
	bools    map[string]bool
	floats   map[string]float64
	ints     map[string][]int
	triggers map[string]int
}

func newFakeAnim() *fakeAnim {
	return &fakeAnim{
		bools:    map[string]bool{},
		floats:   map[string]float64{},
		ints:     map[string][]int{},
		triggers: map[string]int{},
	}
}

func (a *fakeAnim) SetBool(name string, v bool)     { a.bools[name] = v }
func (a *fakeAnim) SetFloat(name string, v float64) { a.floats[name] = v }
func (a *fakeAnim) SetInt(name string, v int)       { a.ints[name] = append(a.ints[name], v) }
func (a *fakeAnim) SetTrigger(name string)          { a.triggers[name]++ }

// frameInput returns next as the frame for the following Sample and then
// clears the edge presses.
type frameInput struct {
	next InputFrame
}

func (f *frameInput) Sample() InputFrame {
	frame := f.next
	f.next.Jump = false
	f.next.Dodge = false
	return frame
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type rig struct {
	ctrl  *Controller
	body  *fakeResolver
	anim  *fakeAnim
	input *frameInput
}

func newRig(t *testing.T, mutate ...func(*config.MotorConfig)) *rig {
	t.Helper()
	cfg := config.DefaultMotor()
	for _, m := range mutate {
		m(&cfg)
	}
	r := &rig{
		body:  &fakeResolver{grounded: true},
		anim:  newFakeAnim(),
		input: &frameInput{},
	}
	ctrl, err := New(cfg,
		WithResolver(r.body),
		WithAnimation(r.anim),
		WithInput(r.input),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	r.ctrl = ctrl
	return r
}

// settle runs one tick so the initial grounded transition is out of the way.
func (r *rig) settle() {
	r.ctrl.Tick(step)
	r.body.reset()
}

func (r *rig) tick() TickResult {
	r.body.reset()
	return r.ctrl.Tick(step)
}
