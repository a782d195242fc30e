//go:build linux

package kms

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/go-theft-auto/shell"
)

// Raw DRM mode-setting over ioctl, enough for a dumb-buffer scanout:
// pick the first connected connector, take its preferred mode, create two
// dumb buffers and page-flip between them.

const (
	drmIoctlBase = 'd'

	drmIoctlModeGetResources = 0xA0
	drmIoctlModeGetEncoder   = 0xA6
	drmIoctlModeGetConnector = 0xA7
	drmIoctlModeAddFB        = 0xAE
	drmIoctlModeRmFB         = 0xAF
	drmIoctlModePageFlip     = 0xB0
	drmIoctlModeSetCrtc      = 0xA2
	drmIoctlModeCreateDumb   = 0xB2
	drmIoctlModeMapDumb      = 0xB3
	drmIoctlModeDestroyDumb  = 0xB4

	drmModeConnected     = 1
	drmModePageFlipEvent = 0x01
)

type drmModeInfo struct {
	Clock                          uint32
	Hdisplay, HsyncStart, HsyncEnd uint16
	Htotal, Hskew                  uint16
	Vdisplay, VsyncStart, VsyncEnd uint16
	Vtotal, Vscan                  uint16
	Vrefresh                       uint32
	Flags                          uint32
	Type                           uint32
	Name                           [32]byte
}

type drmModeCardRes struct {
	FbIDPtr         uint64
	CrtcIDPtr       uint64
	ConnectorIDPtr  uint64
	EncoderIDPtr    uint64
	CountFbs        uint32
	CountCrtcs      uint32
	CountConnectors uint32
	CountEncoders   uint32
	MinWidth        uint32
	MaxWidth        uint32
	MinHeight       uint32
	MaxHeight       uint32
}

type drmModeGetConnector struct {
	EncodersPtr   uint64
	ModesPtr      uint64
	PropsPtr      uint64
	PropValuesPtr uint64

	CountModes    uint32
	CountProps    uint32
	CountEncoders uint32

	EncoderID       uint32
	ConnectorID     uint32
	ConnectorType   uint32
	ConnectorTypeID uint32

	Connection uint32
	MmWidth    uint32
	MmHeight   uint32
	Subpixel   uint32
	Pad        uint32
}

type drmModeGetEncoder struct {
	EncoderID      uint32
	EncoderType    uint32
	CrtcID         uint32
	PossibleCrtcs  uint32
	PossibleClones uint32
}

type drmModeCreateDumb struct {
	Height uint32
	Width  uint32
	Bpp    uint32
	Flags  uint32
	Handle uint32
	Pitch  uint32
	Size   uint64
}

type drmModeMapDumb struct {
	Handle uint32
	Pad    uint32
	Offset uint64
}

type drmModeDestroyDumb struct {
	Handle uint32
}

type drmModeFBCmd struct {
	FbID   uint32
	Width  uint32
	Height uint32
	Pitch  uint32
	Bpp    uint32
	Depth  uint32
	Handle uint32
}

type drmModeCrtc struct {
	SetConnectorsPtr uint64
	CountConnectors  uint32

	CrtcID uint32
	FbID   uint32

	X         uint32
	Y         uint32
	GammaSize uint32
	ModeValid uint32
	Mode      drmModeInfo
}

type drmModePageFlip struct {
	CrtcID   uint32
	FbID     uint32
	Flags    uint32
	Reserved uint32
	UserData uint64
}

// drmIOWR encodes a read-write ioctl request for the DRM character
// device.
func drmIOWR(nr, size uintptr) uintptr {
	const (
		iocWrite = 1
		iocRead  = 2
	)
	return (iocRead|iocWrite)<<30 | size<<16 | drmIoctlBase<<8 | nr
}

func drmIoctl(fd int, nr uintptr, arg unsafe.Pointer, size uintptr) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), drmIOWR(nr, size), uintptr(arg))
		if errno == 0 {
			return nil
		}
		if errno == unix.EINTR || errno == unix.EAGAIN {
			continue
		}
		return errno
	}
}

// dumbBuffer is one scanout buffer: a kernel-allocated dumb buffer mapped
// into the process, with a framebuffer object attached.
type dumbBuffer struct {
	handle uint32
	fbID   uint32
	pitch  int
	size   uint64
	data   []byte
}

// device is an opened DRM card with a mode set and two scanout buffers.
type device struct {
	file *os.File

	width  int
	height int

	crtcID      uint32
	connectorID uint32
	mode        drmModeInfo

	buffers [2]dumbBuffer
	back    int
}

// openDevice opens the card, finds the first connected connector and its
// preferred mode, and allocates the scanout buffers.
func openDevice(path string) (*device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open drm device: %w", err)
	}
	d := &device{file: f}
	if err := d.pickMode(); err != nil {
		f.Close()
		return nil, err
	}
	for i := range d.buffers {
		if err := d.createBuffer(&d.buffers[i]); err != nil {
			d.Close()
			return nil, err
		}
	}
	if err := d.setCrtc(d.buffers[0].fbID); err != nil {
		d.Close()
		return nil, fmt.Errorf("set crtc: %w", err)
	}
	d.back = 1
	return d, nil
}

func (d *device) fd() int { return int(d.file.Fd()) }

func (d *device) pickMode() error {
	var res drmModeCardRes
	if err := drmIoctl(d.fd(), drmIoctlModeGetResources, unsafe.Pointer(&res), unsafe.Sizeof(res)); err != nil {
		return fmt.Errorf("get resources: %w", err)
	}
	if res.CountConnectors == 0 {
		return fmt.Errorf("no connectors")
	}
	connectors := make([]uint32, res.CountConnectors)
	res.ConnectorIDPtr = uint64(uintptr(unsafe.Pointer(&connectors[0])))
	res.CountFbs = 0
	res.CountCrtcs = 0
	res.CountEncoders = 0
	if err := drmIoctl(d.fd(), drmIoctlModeGetResources, unsafe.Pointer(&res), unsafe.Sizeof(res)); err != nil {
		return fmt.Errorf("get connector ids: %w", err)
	}

	for _, id := range connectors {
		var conn drmModeGetConnector
		conn.ConnectorID = id
		if err := drmIoctl(d.fd(), drmIoctlModeGetConnector, unsafe.Pointer(&conn), unsafe.Sizeof(conn)); err != nil {
			continue
		}
		if conn.Connection != drmModeConnected || conn.CountModes == 0 {
			continue
		}
		modes := make([]drmModeInfo, conn.CountModes)
		conn.ModesPtr = uint64(uintptr(unsafe.Pointer(&modes[0])))
		conn.CountProps = 0
		conn.CountEncoders = 0
		if err := drmIoctl(d.fd(), drmIoctlModeGetConnector, unsafe.Pointer(&conn), unsafe.Sizeof(conn)); err != nil {
			continue
		}

		var enc drmModeGetEncoder
		enc.EncoderID = conn.EncoderID
		if err := drmIoctl(d.fd(), drmIoctlModeGetEncoder, unsafe.Pointer(&enc), unsafe.Sizeof(enc)); err != nil {
			continue
		}
		if enc.CrtcID == 0 {
			continue
		}

		// First mode listed is the preferred one.
		d.connectorID = id
		d.crtcID = enc.CrtcID
		d.mode = modes[0]
		d.width = int(d.mode.Hdisplay)
		d.height = int(d.mode.Vdisplay)
		shell.Logger().Info("display mode",
			"connector", id,
			"mode", string(d.mode.Name[:]),
			"width", d.width,
			"height", d.height,
			"refresh", d.mode.Vrefresh)
		return nil
	}
	return fmt.Errorf("no connected connector with a usable mode")
}

func (d *device) createBuffer(b *dumbBuffer) error {
	create := drmModeCreateDumb{
		Width:  uint32(d.width),
		Height: uint32(d.height),
		Bpp:    32,
	}
	if err := drmIoctl(d.fd(), drmIoctlModeCreateDumb, unsafe.Pointer(&create), unsafe.Sizeof(create)); err != nil {
		return fmt.Errorf("create dumb buffer: %w", err)
	}
	b.handle = create.Handle
	b.pitch = int(create.Pitch)
	b.size = create.Size

	fb := drmModeFBCmd{
		Width:  uint32(d.width),
		Height: uint32(d.height),
		Pitch:  create.Pitch,
		Bpp:    32,
		Depth:  24,
		Handle: create.Handle,
	}
	if err := drmIoctl(d.fd(), drmIoctlModeAddFB, unsafe.Pointer(&fb), unsafe.Sizeof(fb)); err != nil {
		return fmt.Errorf("add framebuffer: %w", err)
	}
	b.fbID = fb.FbID

	mp := drmModeMapDumb{Handle: create.Handle}
	if err := drmIoctl(d.fd(), drmIoctlModeMapDumb, unsafe.Pointer(&mp), unsafe.Sizeof(mp)); err != nil {
		return fmt.Errorf("map dumb buffer: %w", err)
	}
	data, err := unix.Mmap(d.fd(), int64(mp.Offset), int(create.Size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap scanout: %w", err)
	}
	b.data = data
	return nil
}

func (d *device) setCrtc(fbID uint32) error {
	crtc := drmModeCrtc{
		SetConnectorsPtr: uint64(uintptr(unsafe.Pointer(&d.connectorID))),
		CountConnectors:  1,
		CrtcID:           d.crtcID,
		FbID:             fbID,
		ModeValid:        1,
		Mode:             d.mode,
	}
	return drmIoctl(d.fd(), drmIoctlModeSetCrtc, unsafe.Pointer(&crtc), unsafe.Sizeof(crtc))
}

// backBuffer returns the buffer to draw the next frame into.
func (d *device) backBuffer() *dumbBuffer {
	return &d.buffers[d.back]
}

// flip schedules a page flip to the back buffer and waits for the vblank
// event, then swaps the roles of the two buffers.
func (d *device) flip() error {
	pf := drmModePageFlip{
		CrtcID: d.crtcID,
		FbID:   d.buffers[d.back].fbID,
		Flags:  drmModePageFlipEvent,
	}
	if err := drmIoctl(d.fd(), drmIoctlModePageFlip, unsafe.Pointer(&pf), unsafe.Sizeof(pf)); err != nil {
		return fmt.Errorf("page flip: %w", err)
	}
	if err := d.waitFlip(); err != nil {
		return err
	}
	d.back ^= 1
	return nil
}

// waitFlip blocks until the kernel delivers the flip-complete event.
func (d *device) waitFlip() error {
	fds := []unix.PollFd{{Fd: int32(d.fd()), Events: unix.POLLIN}}
	var buf [128]byte
	for {
		n, err := unix.Poll(fds, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("poll drm fd: %w", err)
		}
		if n == 0 {
			continue
		}
		if _, err := unix.Read(d.fd(), buf[:]); err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return fmt.Errorf("read drm event: %w", err)
		}
		return nil
	}
}

// Close restores nothing; the last scanned-out frame stays on the panel.
func (d *device) Close() error {
	for i := range d.buffers {
		b := &d.buffers[i]
		if b.data != nil {
			unix.Munmap(b.data)
			b.data = nil
		}
		if b.fbID != 0 {
			id := b.fbID
			drmIoctl(d.fd(), drmIoctlModeRmFB, unsafe.Pointer(&id), unsafe.Sizeof(id))
			b.fbID = 0
		}
		if b.handle != 0 {
			destroy := drmModeDestroyDumb{Handle: b.handle}
			drmIoctl(d.fd(), drmIoctlModeDestroyDumb, unsafe.Pointer(&destroy), unsafe.Sizeof(destroy))
			b.handle = 0
		}
	}
	return d.file.Close()
}
