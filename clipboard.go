package shell

// FormatID identifies a clipboard data format, e.g. "text/plain".
type FormatID string

// TextFormat is the plain-text clipboard format.
const TextFormat FormatID = "text/plain"

// ClipboardFormat pairs a format identifier with its data.
type ClipboardFormat struct {
	Format FormatID
	Data   []byte
}

// Clipboard abstracts the system clipboard. The glfw backend maps the
// string pair onto the native clipboard; the kms backend keeps a
// process-local store, since it has no display server to share with.
type Clipboard interface {
	// PutString puts a string onto the system clipboard.
	PutString(s string)

	// PutFormats puts multi-format data onto the system clipboard.
	PutFormats(formats []ClipboardFormat)

	// GetString gets a string from the system clipboard, if one is
	// available.
	GetString() (string, bool)

	// PreferredFormat returns the supported format with the highest
	// priority on the system clipboard, if any.
	PreferredFormat(formats []FormatID) (FormatID, bool)

	// GetFormat returns clipboard data in the given format, if available.
	GetFormat(format FormatID) ([]byte, bool)

	// AvailableTypeNames lists the type names currently on the clipboard,
	// for debugging.
	AvailableTypeNames() []string
}
