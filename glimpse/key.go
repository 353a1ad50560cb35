package glimpse

import "strconv"

// Key is a platform independent key code.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyUnknown:   "Unknown",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}

	switch {
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)

	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	}

	return "Key(" + strconv.Itoa(int(k)) + ")"
}
