//go:build windows
// +build windows

package platform

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/peternagy/pdfbinder/internal/types"
)

var (
	dwmapi                      = syscall.NewLazyDLL("dwmapi.dll")
	procDwmGetColorizationColor = dwmapi.NewProc("DwmGetColorizationColor")
)

// windowGlassColor reads the DWM colorization color, the same value
// Windows uses for window glass.
func windowGlassColor() (types.Color, error) {
	if err := procDwmGetColorizationColor.Find(); err != nil {
		return types.Color{}, ErrAccentUnavailable
	}

	var color uint32
	var opaque int32
	hr, _, _ := procDwmGetColorizationColor.Call(
		uintptr(unsafe.Pointer(&color)),
		uintptr(unsafe.Pointer(&opaque)),
	)
	if hr != 0 {
		return types.Color{}, fmt.Errorf("DwmGetColorizationColor failed: 0x%08x", uint32(hr))
	}
	return FromColorization(color), nil
}
