//go:build !js

package pulse

/*
#include <stddef.h>
#include <stdint.h>

typedef struct WGPUSurfaceImpl* WGPUSurface;
typedef struct WGPUTextureImpl* WGPUTexture;

typedef struct WGPUSurfaceTexture {
	WGPUTexture texture;
	uint32_t suboptimal;
	uint32_t status;
} WGPUSurfaceTexture;

// provided by wgpu_native, which is linked by the wgpu package
void wgpuSurfaceGetCurrentTexture(WGPUSurface surface, WGPUSurfaceTexture * surfaceTexture);
void wgpuTextureRelease(WGPUTexture texture);

static inline WGPUTexture pulse_surface_current_texture(WGPUSurface surface, uint32_t * status) {
	WGPUSurfaceTexture ref = {0};
	wgpuSurfaceGetCurrentTexture(surface, &ref);

	*status = ref.status;

	if (ref.status != 0 && ref.texture != NULL) {
		wgpuTextureRelease(ref.texture);
		return NULL;
	}

	return ref.texture;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearwindow/orion"
)

// surfaceRefs has the memory layout of wgpu.Surface.
type surfaceRefs struct {
	device  unsafe.Pointer
	surface C.WGPUSurface
}

// textureRefs has the memory layout of wgpu.Texture.
type textureRefs struct {
	device  unsafe.Pointer
	texture C.WGPUTexture
}

func init() {
	if unsafe.Sizeof(wgpu.Surface{}) != unsafe.Sizeof(surfaceRefs{}) {
		panic("pulse: unexpected layout of wgpu.Surface")
	}

	if unsafe.Sizeof(wgpu.Texture{}) != unsafe.Sizeof(textureRefs{}) {
		panic("pulse: unexpected layout of wgpu.Texture")
	}
}

// currentTexture acquires the next surface texture. wgpu.Surface.GetCurrentTexture
// drops the acquisition status, so we ask wgpu_native directly and report
// every status other than success as an orion.AcquireError.
func currentTexture(surface *wgpu.Surface) (*wgpu.Texture, error) {
	refs := (*surfaceRefs)(unsafe.Pointer(surface))

	var code C.uint32_t
	texture := C.pulse_surface_current_texture(refs.surface, &code)

	if status, failed := orion.SurfaceStatusOf(uint32(code)); failed {
		return nil, &orion.AcquireError{
			Status: status,
			Err:    fmt.Errorf("get current texture: status code %d", uint32(code)),
		}
	}

	if texture == nil {
		return nil, &orion.AcquireError{
			Status: orion.StatusUnknown,
			Err:    errors.New("get current texture: no texture"),
		}
	}

	return (*wgpu.Texture)(unsafe.Pointer(&textureRefs{device: refs.device, texture: texture})), nil
}
