// Package kms is the direct-rendering backend: it scans out to a DRM/KMS
// dumb buffer with no display server and no GPU, painting on the CPU. It
// exists for kiosk style deployments where the process owns the panel.
//
// Portrait-mounted panels are handled by rotating at the last moment:
// the handler keeps drawing in landscape and the canvas and the damage
// rects are rotated onto the panel.
package kms
