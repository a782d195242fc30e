package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shell"
)

// glfwKeyToCode maps a GLFW key to the physical key code delivered to the
// window handler. Keys GLFW knows but the code table does not come back
// as CodeUnidentified.
func glfwKeyToCode(key glfw.Key) shell.Code {
	switch key {
	case glfw.Key0:
		return shell.CodeDigit0
	case glfw.Key1:
		return shell.CodeDigit1
	case glfw.Key2:
		return shell.CodeDigit2
	case glfw.Key3:
		return shell.CodeDigit3
	case glfw.Key4:
		return shell.CodeDigit4
	case glfw.Key5:
		return shell.CodeDigit5
	case glfw.Key6:
		return shell.CodeDigit6
	case glfw.Key7:
		return shell.CodeDigit7
	case glfw.Key8:
		return shell.CodeDigit8
	case glfw.Key9:
		return shell.CodeDigit9
	case glfw.KeyA:
		return shell.CodeKeyA
	case glfw.KeyB:
		return shell.CodeKeyB
	case glfw.KeyC:
		return shell.CodeKeyC
	case glfw.KeyD:
		return shell.CodeKeyD
	case glfw.KeyE:
		return shell.CodeKeyE
	case glfw.KeyF:
		return shell.CodeKeyF
	case glfw.KeyG:
		return shell.CodeKeyG
	case glfw.KeyH:
		return shell.CodeKeyH
	case glfw.KeyI:
		return shell.CodeKeyI
	case glfw.KeyJ:
		return shell.CodeKeyJ
	case glfw.KeyK:
		return shell.CodeKeyK
	case glfw.KeyL:
		return shell.CodeKeyL
	case glfw.KeyM:
		return shell.CodeKeyM
	case glfw.KeyN:
		return shell.CodeKeyN
	case glfw.KeyO:
		return shell.CodeKeyO
	case glfw.KeyP:
		return shell.CodeKeyP
	case glfw.KeyQ:
		return shell.CodeKeyQ
	case glfw.KeyR:
		return shell.CodeKeyR
	case glfw.KeyS:
		return shell.CodeKeyS
	case glfw.KeyT:
		return shell.CodeKeyT
	case glfw.KeyU:
		return shell.CodeKeyU
	case glfw.KeyV:
		return shell.CodeKeyV
	case glfw.KeyW:
		return shell.CodeKeyW
	case glfw.KeyX:
		return shell.CodeKeyX
	case glfw.KeyY:
		return shell.CodeKeyY
	case glfw.KeyZ:
		return shell.CodeKeyZ
	case glfw.KeyF1:
		return shell.CodeF1
	case glfw.KeyF2:
		return shell.CodeF2
	case glfw.KeyF3:
		return shell.CodeF3
	case glfw.KeyF4:
		return shell.CodeF4
	case glfw.KeyF5:
		return shell.CodeF5
	case glfw.KeyF6:
		return shell.CodeF6
	case glfw.KeyF7:
		return shell.CodeF7
	case glfw.KeyF8:
		return shell.CodeF8
	case glfw.KeyF9:
		return shell.CodeF9
	case glfw.KeyF10:
		return shell.CodeF10
	case glfw.KeyF11:
		return shell.CodeF11
	case glfw.KeyF12:
		return shell.CodeF12
	case glfw.KeyEscape:
		return shell.CodeEscape
	case glfw.KeyEnter:
		return shell.CodeEnter
	case glfw.KeySpace:
		return shell.CodeSpace
	case glfw.KeyTab:
		return shell.CodeTab
	case glfw.KeyBackspace:
		return shell.CodeBackspace
	case glfw.KeyInsert:
		return shell.CodeInsert
	case glfw.KeyDelete:
		return shell.CodeDelete
	case glfw.KeyHome:
		return shell.CodeHome
	case glfw.KeyEnd:
		return shell.CodeEnd
	case glfw.KeyPageUp:
		return shell.CodePageUp
	case glfw.KeyPageDown:
		return shell.CodePageDown
	case glfw.KeyLeft:
		return shell.CodeArrowLeft
	case glfw.KeyRight:
		return shell.CodeArrowRight
	case glfw.KeyUp:
		return shell.CodeArrowUp
	case glfw.KeyDown:
		return shell.CodeArrowDown
	case glfw.KeyPrintScreen:
		return shell.CodePrintScreen
	case glfw.KeyScrollLock:
		return shell.CodeScrollLock
	case glfw.KeyPause:
		return shell.CodePause
	case glfw.KeyCapsLock:
		return shell.CodeCapsLock
	case glfw.KeyNumLock:
		return shell.CodeNumLock
	case glfw.KeyKP0:
		return shell.CodeNumpad0
	case glfw.KeyKP1:
		return shell.CodeNumpad1
	case glfw.KeyKP2:
		return shell.CodeNumpad2
	case glfw.KeyKP3:
		return shell.CodeNumpad3
	case glfw.KeyKP4:
		return shell.CodeNumpad4
	case glfw.KeyKP5:
		return shell.CodeNumpad5
	case glfw.KeyKP6:
		return shell.CodeNumpad6
	case glfw.KeyKP7:
		return shell.CodeNumpad7
	case glfw.KeyKP8:
		return shell.CodeNumpad8
	case glfw.KeyKP9:
		return shell.CodeNumpad9
	case glfw.KeyKPDecimal:
		return shell.CodeNumpadDecimal
	case glfw.KeyKPDivide:
		return shell.CodeNumpadDivide
	case glfw.KeyKPMultiply:
		return shell.CodeNumpadMultiply
	case glfw.KeyKPSubtract:
		return shell.CodeNumpadSubtract
	case glfw.KeyKPAdd:
		return shell.CodeNumpadAdd
	case glfw.KeyKPEnter:
		return shell.CodeNumpadEnter
	case glfw.KeyKPEqual:
		return shell.CodeNumpadEqual
	case glfw.KeyLeftShift:
		return shell.CodeShiftLeft
	case glfw.KeyRightShift:
		return shell.CodeShiftRight
	case glfw.KeyLeftControl:
		return shell.CodeControlLeft
	case glfw.KeyRightControl:
		return shell.CodeControlRight
	case glfw.KeyLeftAlt:
		return shell.CodeAltLeft
	case glfw.KeyRightAlt:
		return shell.CodeAltRight
	case glfw.KeyLeftSuper:
		return shell.CodeMetaLeft
	case glfw.KeyRightSuper:
		return shell.CodeMetaRight
	case glfw.KeyMinus:
		return shell.CodeMinus
	case glfw.KeyEqual:
		return shell.CodeEqual
	case glfw.KeyLeftBracket:
		return shell.CodeBracketLeft
	case glfw.KeyRightBracket:
		return shell.CodeBracketRight
	case glfw.KeyBackslash:
		return shell.CodeBackslash
	case glfw.KeySemicolon:
		return shell.CodeSemicolon
	case glfw.KeyApostrophe:
		return shell.CodeQuote
	case glfw.KeyGraveAccent:
		return shell.CodeBackquote
	case glfw.KeyComma:
		return shell.CodeComma
	case glfw.KeyPeriod:
		return shell.CodePeriod
	case glfw.KeySlash:
		return shell.CodeSlash
	case glfw.KeyMenu:
		return shell.CodeContextMenu
	default:
		return shell.CodeUnidentified
	}
}

// glfwMouseButton maps a GLFW mouse button to the toolkit's button enum.
func glfwMouseButton(button glfw.MouseButton) shell.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return shell.MouseButtonLeft
	case glfw.MouseButtonRight:
		return shell.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return shell.MouseButtonMiddle
	case glfw.MouseButton4:
		return shell.MouseButtonX1
	case glfw.MouseButton5:
		return shell.MouseButtonX2
	default:
		return shell.MouseButtonNone
	}
}

// glfwMods maps GLFW modifier bits to the toolkit's modifier set.
func glfwMods(mods glfw.ModifierKey) shell.Modifiers {
	var out shell.Modifiers
	if mods&glfw.ModShift != 0 {
		out |= shell.ModShift
	}
	if mods&glfw.ModControl != 0 {
		out |= shell.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		out |= shell.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		out |= shell.ModMeta
	}
	return out
}
