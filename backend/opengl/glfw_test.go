package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shell"
)

func TestGLFWMods(t *testing.T) {
	cases := []struct {
		in   glfw.ModifierKey
		want shell.Modifiers
	}{
		{0, 0},
		{glfw.ModShift, shell.ModShift},
		{glfw.ModControl, shell.ModCtrl},
		{glfw.ModAlt, shell.ModAlt},
		{glfw.ModSuper, shell.ModMeta},
		{glfw.ModShift | glfw.ModControl, shell.ModShift | shell.ModCtrl},
		{glfw.ModShift | glfw.ModAlt | glfw.ModSuper, shell.ModShift | shell.ModAlt | shell.ModMeta},
	}
	for _, c := range cases {
		if got := glfwMods(c.in); got != c.want {
			t.Errorf("glfwMods(%#x) = %v, want %v", int(c.in), got, c.want)
		}
	}
}

func TestGLFWModsFeedShiftedKeys(t *testing.T) {
	mods := glfwMods(glfw.ModShift)
	if key := shell.CodeToKey(glfwKeyToCode(glfw.KeyA), mods); key != "A" {
		t.Errorf("shifted A = %q", key)
	}
	if key := shell.CodeToKey(glfwKeyToCode(glfw.KeyA), 0); key != "a" {
		t.Errorf("unshifted A = %q", key)
	}
}

func TestGLFWMouseButton(t *testing.T) {
	cases := []struct {
		in   glfw.MouseButton
		want shell.MouseButton
	}{
		{glfw.MouseButtonLeft, shell.MouseButtonLeft},
		{glfw.MouseButtonRight, shell.MouseButtonRight},
		{glfw.MouseButtonMiddle, shell.MouseButtonMiddle},
		{glfw.MouseButton4, shell.MouseButtonX1},
		{glfw.MouseButton5, shell.MouseButtonX2},
		{glfw.MouseButton8, shell.MouseButtonNone},
	}
	for _, c := range cases {
		if got := glfwMouseButton(c.in); got != c.want {
			t.Errorf("glfwMouseButton(%d) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGLFWKeyToCode(t *testing.T) {
	cases := []struct {
		in   glfw.Key
		want shell.Code
	}{
		{glfw.KeyA, shell.CodeKeyA},
		{glfw.Key0, shell.CodeDigit0},
		{glfw.KeyEnter, shell.CodeEnter},
		{glfw.KeyLeftShift, shell.CodeShiftLeft},
		{glfw.KeyKPEnter, shell.CodeNumpadEnter},
		{glfw.KeyMenu, shell.CodeContextMenu},
		{glfw.KeyUnknown, shell.CodeUnidentified},
	}
	for _, c := range cases {
		if got := glfwKeyToCode(c.in); got != c.want {
			t.Errorf("glfwKeyToCode(%d) = %v, want %v", c.in, got, c.want)
		}
	}
}
