//go:build js

package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearwindow/orion"
)

// currentTexture acquires the next canvas texture. The browser does not
// report a status, so whatever text the error carries is all we have.
func currentTexture(surface *wgpu.Surface) (*wgpu.Texture, error) {
	texture, err := surface.GetCurrentTexture()
	if err != nil {
		return nil, &orion.AcquireError{
			Status: orion.ParseSurfaceStatus(err.Error()),
			Err:    err,
		}
	}

	return texture, nil
}
