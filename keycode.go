package shell

// Code identifies a physical key position, following the W3C UI Events
// code values. Native virtual-key codes are mapped into this enumeration
// by each backend; anything without a good mapping becomes CodeUnidentified.
type Code int

const (
	CodeUnidentified Code = iota

	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9

	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	CodeEscape
	CodeEnter
	CodeSpace
	CodeTab
	CodeBackspace

	CodeArrowUp
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight

	CodeInsert
	CodeDelete
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	CodePrintScreen
	CodeScrollLock
	CodePause

	CodeNumLock
	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpadAdd
	CodeNumpadSubtract
	CodeNumpadMultiply
	CodeNumpadDivide
	CodeNumpadDecimal
	CodeNumpadComma
	CodeNumpadEnter
	CodeNumpadEqual

	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeMetaLeft
	CodeMetaRight

	CodeMinus
	CodeEqual
	CodeBracketLeft
	CodeBracketRight
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeBackquote
	CodeComma
	CodePeriod
	CodeSlash
	CodeCapsLock

	CodeConvert
	CodeNonConvert
	CodeContextMenu

	CodeMediaSelect
	CodeMediaStop
	CodePower
	CodeSleep
	CodeCopy
	CodeCut
	CodePaste

	codeCount
)

// codeKeys maps codes to their logical key values with no modifiers held.
// Letters come out lowercase; named keys use W3C key names.
var codeKeys = map[Code]string{
	CodeDigit0: "0", CodeDigit1: "1", CodeDigit2: "2", CodeDigit3: "3",
	CodeDigit4: "4", CodeDigit5: "5", CodeDigit6: "6", CodeDigit7: "7",
	CodeDigit8: "8", CodeDigit9: "9",

	CodeKeyA: "a", CodeKeyB: "b", CodeKeyC: "c", CodeKeyD: "d",
	CodeKeyE: "e", CodeKeyF: "f", CodeKeyG: "g", CodeKeyH: "h",
	CodeKeyI: "i", CodeKeyJ: "j", CodeKeyK: "k", CodeKeyL: "l",
	CodeKeyM: "m", CodeKeyN: "n", CodeKeyO: "o", CodeKeyP: "p",
	CodeKeyQ: "q", CodeKeyR: "r", CodeKeyS: "s", CodeKeyT: "t",
	CodeKeyU: "u", CodeKeyV: "v", CodeKeyW: "w", CodeKeyX: "x",
	CodeKeyY: "y", CodeKeyZ: "z",

	CodeF1: "F1", CodeF2: "F2", CodeF3: "F3", CodeF4: "F4",
	CodeF5: "F5", CodeF6: "F6", CodeF7: "F7", CodeF8: "F8",
	CodeF9: "F9", CodeF10: "F10", CodeF11: "F11", CodeF12: "F12",

	CodeEscape:    "Escape",
	CodeEnter:     "Enter",
	CodeSpace:     " ",
	CodeTab:       "Tab",
	CodeBackspace: "Backspace",

	CodeArrowUp:    "ArrowUp",
	CodeArrowDown:  "ArrowDown",
	CodeArrowLeft:  "ArrowLeft",
	CodeArrowRight: "ArrowRight",

	CodeInsert:   "Insert",
	CodeDelete:   "Delete",
	CodeHome:     "Home",
	CodeEnd:      "End",
	CodePageUp:   "PageUp",
	CodePageDown: "PageDown",

	CodePrintScreen: "PrintScreen",
	CodeScrollLock:  "ScrollLock",
	CodePause:       "Pause",

	CodeNumLock: "NumLock",
	CodeNumpad0: "0", CodeNumpad1: "1", CodeNumpad2: "2",
	CodeNumpad3: "3", CodeNumpad4: "4", CodeNumpad5: "5",
	CodeNumpad6: "6", CodeNumpad7: "7", CodeNumpad8: "8",
	CodeNumpad9: "9",
	CodeNumpadAdd:      "+",
	CodeNumpadSubtract: "-",
	CodeNumpadMultiply: "*",
	CodeNumpadDivide:   "/",
	CodeNumpadDecimal:  ".",
	CodeNumpadComma:    ",",
	CodeNumpadEnter:    "Enter",
	CodeNumpadEqual:    "=",

	CodeShiftLeft: "Shift", CodeShiftRight: "Shift",
	CodeControlLeft: "Control", CodeControlRight: "Control",
	CodeAltLeft: "Alt", CodeAltRight: "Alt",
	CodeMetaLeft: "Meta", CodeMetaRight: "Meta",

	CodeMinus:        "-",
	CodeEqual:        "=",
	CodeBracketLeft:  "[",
	CodeBracketRight: "]",
	CodeBackslash:    `\`,
	CodeSemicolon:    ";",
	CodeQuote:        "'",
	CodeBackquote:    "`",
	CodeComma:        ",",
	CodePeriod:       ".",
	CodeSlash:        "/",
	CodeCapsLock:     "CapsLock",

	CodeConvert:     "Convert",
	CodeNonConvert:  "NonConvert",
	CodeContextMenu: "ContextMenu",

	CodeMediaSelect: "LaunchMediaPlayer",
	CodeMediaStop:   "MediaStop",
	CodePower:       "Power",
	CodeSleep:       "Standby",
	CodeCopy:        "Copy",
	CodeCut:         "Cut",
	CodePaste:       "Paste",
}

// CodeToKey maps a physical code and the held modifiers to the logical key
// value. Modifier state is empty in the current backends, so the unshifted
// value is what comes out; unknown codes map to "Unidentified".
func CodeToKey(code Code, mods Modifiers) string {
	key, ok := codeKeys[code]
	if !ok {
		return "Unidentified"
	}
	if mods&ModShift != 0 && len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		return string(key[0] - 'a' + 'A')
	}
	return key
}

// codeLocation infers the keyboard location from the code.
func codeLocation(code Code) Location {
	switch code {
	case CodeShiftLeft, CodeControlLeft, CodeAltLeft, CodeMetaLeft:
		return LocationLeft
	case CodeShiftRight, CodeControlRight, CodeAltRight, CodeMetaRight:
		return LocationRight
	case CodeNumpad0, CodeNumpad1, CodeNumpad2, CodeNumpad3, CodeNumpad4,
		CodeNumpad5, CodeNumpad6, CodeNumpad7, CodeNumpad8, CodeNumpad9,
		CodeNumpadAdd, CodeNumpadSubtract, CodeNumpadMultiply,
		CodeNumpadDivide, CodeNumpadDecimal, CodeNumpadComma,
		CodeNumpadEnter, CodeNumpadEqual, CodeNumLock:
		return LocationNumpad
	default:
		return LocationStandard
	}
}
