package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearwindow/orion"
)

func TestLoadStoreOps(t *testing.T) {
	if loadOpOf(orion.LoadOpClear) != wgpu.LoadOpClear {
		t.Error("clear load op not mapped")
	}

	if loadOpOf(orion.LoadOpLoad) != wgpu.LoadOpLoad {
		t.Error("load op not mapped")
	}

	if storeOpOf(orion.StoreOpStore) != wgpu.StoreOpStore {
		t.Error("store op not mapped")
	}

	if storeOpOf(orion.StoreOpDiscard) != wgpu.StoreOpDiscard {
		t.Error("discard store op not mapped")
	}
}

type foreignView struct{}

func (foreignView) Release() {}

func TestBeginRenderPassRejectsForeignView(t *testing.T) {
	enc := &encoder{}

	pass, err := enc.BeginRenderPass(orion.RenderPassDescriptor{
		ColorAttachments: []orion.ColorAttachment{{View: foreignView{}}},
	})

	if err == nil || pass != nil {
		t.Fatalf("expected an error for a foreign view, got pass %v", pass)
	}
}

func TestRenderPassIsOrionRenderPass(t *testing.T) {
	var pass any = renderPass{}
	if _, ok := pass.(orion.RenderPass); !ok {
		t.Fatal("renderPass does not implement orion.RenderPass")
	}
}

func TestDefaultClearColorIsExact(t *testing.T) {
	want := wgpu.Color{R: 0.1, G: 0.9, B: 0.3, A: 1.0}
	if got := colorOf(orion.DefaultClearColor); got != want {
		t.Fatalf("clear value %+v, want %+v", got, want)
	}
}
