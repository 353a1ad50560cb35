package orion

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/oliverbestmann/clearwindow/glimpse"
)

// recorder collects every gpu call of the fakes in order.
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

type fakeWindow struct {
	size    glimpse.Size[uint32]
	redraws int
}

func (w *fakeWindow) FramebufferSize() glimpse.Size[uint32] {
	return w.size
}

func (w *fakeWindow) RequestRedraw() {
	w.redraws++
}

type fakeSurface struct {
	rec *recorder

	// errors to return from Acquire before handing out images
	acquireErrors []error
	configureErr  error

	nextImage  int
	images     []*fakeImage
	configured []glimpse.Size[uint32]
}

func (s *fakeSurface) Acquire() (Image, error) {
	if len(s.acquireErrors) > 0 {
		err := s.acquireErrors[0]
		s.acquireErrors = s.acquireErrors[1:]
		s.rec.record("acquire failed")
		return nil, err
	}

	s.nextImage++

	image := &fakeImage{rec: s.rec, id: s.nextImage}
	s.images = append(s.images, image)
	s.rec.record("acquire image%d", image.id)

	return image, nil
}

func (s *fakeSurface) Configure(width, height uint32) error {
	if s.configureErr != nil {
		return s.configureErr
	}

	s.configured = append(s.configured, glimpse.SizeOf(width, height))
	s.rec.record("configure %dx%d", width, height)
	return nil
}

type fakeImage struct {
	rec        *recorder
	id         int
	presented  int
	released   int
	presentErr error
	viewErr    error
}

func (i *fakeImage) CreateView() (View, error) {
	if i.viewErr != nil {
		return nil, i.viewErr
	}

	i.rec.record("view image%d", i.id)
	return &fakeView{rec: i.rec, image: i}, nil
}

func (i *fakeImage) Present() error {
	if i.presentErr != nil {
		return i.presentErr
	}

	i.presented++
	i.rec.record("present image%d", i.id)
	return nil
}

func (i *fakeImage) Release() {
	i.released++
	i.rec.record("release image%d", i.id)
}

type fakeView struct {
	rec      *recorder
	image    *fakeImage
	released bool
}

func (v *fakeView) Release() {
	v.released = true
}

type fakeDevice struct {
	rec      *recorder
	encoders []*fakeEncoder
}

func (d *fakeDevice) CreateCommandEncoder(label string) (CommandEncoder, error) {
	enc := &fakeEncoder{rec: d.rec, id: len(d.encoders) + 1}
	d.encoders = append(d.encoders, enc)
	d.rec.record("encoder %s", label)
	return enc, nil
}

type fakeEncoder struct {
	rec      *recorder
	id       int
	passes   []RenderPassDescriptor
	draws    int
	released bool
}

func (e *fakeEncoder) BeginRenderPass(desc RenderPassDescriptor) (RenderPass, error) {
	e.passes = append(e.passes, desc)
	e.rec.record("begin pass %s", desc.Label)
	return &fakePass{rec: e.rec}, nil
}

func (e *fakeEncoder) Finish(label string) (CommandBuffer, error) {
	e.rec.record("finish")
	return &fakeBuffer{encoder: e}, nil
}

func (e *fakeEncoder) Release() {
	e.released = true
}

type fakePass struct {
	rec *recorder
}

func (p *fakePass) End() error {
	p.rec.record("end pass")
	return nil
}

func (p *fakePass) Release() {}

type fakeBuffer struct {
	encoder  *fakeEncoder
	released bool
}

func (b *fakeBuffer) Release() {
	b.released = true
}

type fakeQueue struct {
	rec       *recorder
	submitted []*fakeBuffer
}

func (q *fakeQueue) Submit(buffers ...CommandBuffer) {
	for _, buf := range buffers {
		fb := buf.(*fakeBuffer)
		q.submitted = append(q.submitted, fb)
		q.rec.record("submit encoder%d", fb.encoder.id)
	}
}

type fixture struct {
	rec     *recorder
	window  *fakeWindow
	surface *fakeSurface
	device  *fakeDevice
	queue   *fakeQueue
	cycle   *Cycle
}

func newFixture(opts Options) *fixture {
	rec := &recorder{}

	f := &fixture{
		rec:     rec,
		window:  &fakeWindow{size: glimpse.SizeOf[uint32](800, 600)},
		surface: &fakeSurface{rec: rec},
		device:  &fakeDevice{rec: rec},
		queue:   &fakeQueue{rec: rec},
	}

	if opts.Log == nil {
		opts.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cycle, err := NewCycle(f.window, GPU{Surface: f.surface, Device: f.device, Queue: f.queue}, opts)
	if err != nil {
		panic(err)
	}

	f.cycle = cycle

	// only record what happens after setup
	rec.calls = nil

	return f
}

// feed sends the events to the cycle, starting in the Running state.
func (f *fixture) feed(events ...glimpse.Event) (State, error) {
	state := Running

	var firstErr error
	for _, ev := range events {
		var err error
		state, err = f.cycle.Handle(state, ev)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return state, firstErr
}

var errTest = errors.New("test error")
