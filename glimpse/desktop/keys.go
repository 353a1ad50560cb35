//go:build !js

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/clearwindow/glimpse"
)

var glfwToKey = map[glfw.Key]glimpse.Key{
	glfw.KeyEscape:    glimpse.KeyEscape,
	glfw.KeyEnter:     glimpse.KeyEnter,
	glfw.KeyKPEnter:   glimpse.KeyEnter,
	glfw.KeySpace:     glimpse.KeySpace,
	glfw.KeyTab:       glimpse.KeyTab,
	glfw.KeyBackspace: glimpse.KeyBackspace,
	glfw.KeyLeft:      glimpse.KeyLeft,
	glfw.KeyRight:     glimpse.KeyRight,
	glfw.KeyUp:        glimpse.KeyUp,
	glfw.KeyDown:      glimpse.KeyDown,
}

func init() {
	for idx := range 12 {
		glfwToKey[glfw.KeyF1+glfw.Key(idx)] = glimpse.KeyF1 + glimpse.Key(idx)
	}

	for idx := range 26 {
		glfwToKey[glfw.KeyA+glfw.Key(idx)] = glimpse.KeyA + glimpse.Key(idx)
	}
}
