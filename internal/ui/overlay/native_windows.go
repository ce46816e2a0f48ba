//go:build windows

package overlay

import (
	"syscall"

	"aicount/internal/core/model"

	"fyne.io/fyne/v2/driver"
)

const (
	gwlExStyle     int32 = -20
	wsExLayered          = 0x00080000
	wsExToolWindow       = 0x00000080
	lwaColorKey          = 0x1

	swpNoSize     = 0x0001
	swpNoActivate = 0x0010

	nativeMoveSupported = true
)

// hwndTopmost is (HWND)-1.
var hwndTopmost = ^uintptr(0)

var (
	user32DLL                      = syscall.NewLazyDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32DLL.NewProc("SetWindowPos")
)

func (overlay *Window) applyNative(position model.Point) {
	overlay.withHWND(func(hwnd uintptr) {
		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		wanted := style | wsExLayered | wsExToolWindow
		if wanted != style {
			procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), wanted)
		}
		procSetLayeredWindowAttributes.Call(hwnd, colorRef(), 0, uintptr(lwaColorKey))
		setWindowPos(hwnd, position)
	})
}

func (overlay *Window) moveNative(position model.Point) {
	overlay.withHWND(func(hwnd uintptr) {
		setWindowPos(hwnd, position)
	})
}

func (overlay *Window) withHWND(fn func(hwnd uintptr)) {
	nativeWindow, ok := overlay.window.(driver.NativeWindow)
	if !ok {
		return
	}

	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}
		fn(hwnd)
	})
}

func setWindowPos(hwnd uintptr, position model.Point) {
	procSetWindowPos.Call(
		hwnd,
		hwndTopmost,
		int32ToUintptr(int32(position.X)),
		int32ToUintptr(int32(position.Y)),
		0, 0,
		uintptr(swpNoSize|swpNoActivate),
	)
}

// colorRef encodes colorKey as 0x00BBGGRR.
func colorRef() uintptr {
	return uintptr(colorKey.R) | uintptr(colorKey.G)<<8 | uintptr(colorKey.B)<<16
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
