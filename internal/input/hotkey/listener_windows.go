//go:build windows

package hotkey

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
	"unsafe"
)

const (
	whKeyboardLL = 13

	wmQuit       = 0x0012
	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	pendingHandlers = 32
)

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")

	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procGetCurrentThreadID = kernel32.NewProc("GetCurrentThreadId")

	keyboardHookCallback = syscall.NewCallback(keyboardLLCallback)

	activeListener atomic.Pointer[windowsListener]
)

type point struct {
	X int32
	Y int32
}

type keyboardLLHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type message struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

// windowsListener installs a low-level keyboard hook on a dedicated OS
// thread. Handlers are queued to a worker goroutine so the hook returns fast.
type windowsListener struct {
	logger     *slog.Logger
	dispatcher *dispatcher
	pending    chan func()

	started  bool
	stopOnce sync.Once
	threadID atomic.Uint32
	loopDone chan struct{}
	workDone chan struct{}
}

func newListener(logger *slog.Logger) Listener {
	return &windowsListener{
		logger:     logger,
		dispatcher: newDispatcher(),
		pending:    make(chan func(), pendingHandlers),
	}
}

func (l *windowsListener) Register(chord Chord, handler func()) error {
	if l.started {
		return ErrAlreadyStarted
	}
	l.dispatcher.add(chord, handler)
	l.logger.Debug("hotkey registered", "chord", chord.String())
	return nil
}

func (l *windowsListener) Start() error {
	if !activeListener.CompareAndSwap(nil, l) {
		return fmt.Errorf("windows keyboard hook is already active")
	}
	l.started = true
	l.loopDone = make(chan struct{})
	l.workDone = make(chan struct{})

	go l.work()

	ready := make(chan error, 1)
	go l.hookLoop(ready)

	if err := <-ready; err != nil {
		l.Stop()
		return err
	}
	return nil
}

func (l *windowsListener) Stop() {
	if !l.started {
		return
	}
	l.stopOnce.Do(func() {
		threadID := l.threadID.Load()
		if threadID != 0 {
			_, _, _ = procPostThreadMessageW.Call(uintptr(threadID), uintptr(wmQuit), 0, 0)
		}
		<-l.loopDone
		close(l.pending)
		<-l.workDone
		activeListener.CompareAndSwap(l, nil)
	})
}

func (l *windowsListener) work() {
	defer close(l.workDone)
	for handler := range l.pending {
		handler()
	}
}

func (l *windowsListener) hookLoop(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(l.loopDone)

	threadID, _, _ := procGetCurrentThreadID.Call()
	l.threadID.Store(uint32(threadID))

	keyboardHook, _, keyboardErr := procSetWindowsHookExW.Call(uintptr(whKeyboardLL), keyboardHookCallback, 0, 0)
	if keyboardHook == 0 {
		ready <- fmt.Errorf("failed to install keyboard hook: %w", keyboardErr)
		return
	}
	defer func() {
		_, _, _ = procUnhookWindowsHookEx.Call(keyboardHook)
	}()

	ready <- nil

	var msg message
	for {
		ret, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			l.logger.Warn("Windows message loop failed", "err", callErr)
			return
		case 0:
			return
		default:
			_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
			_, _, _ = procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
		}
	}
}

func keyboardLLCallback(code int, wParam uintptr, lParam uintptr) uintptr {
	if code >= 0 {
		if l := activeListener.Load(); l != nil {
			l.handleKeyboardHook(wParam, lParam)
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}

// handleKeyboardHook runs on the hook thread only, so the dispatcher needs
// no lock.
func (l *windowsListener) handleKeyboardHook(wParam uintptr, lParam uintptr) {
	if lParam == 0 {
		return
	}

	// Injected events count too, so presses sent by macro tools and remote
	// desktop clients behave like physical ones.
	event := (*keyboardLLHookStruct)(unsafe.Pointer(lParam))
	key, ok := keyFromVK(event.VkCode, event.Flags)
	if !ok {
		return
	}

	switch uint32(wParam) {
	case wmKeyDown, wmSysKeyDown:
		for _, handler := range l.dispatcher.keyDown(key, time.Now()) {
			select {
			case l.pending <- handler:
			default:
				l.logger.Warn("hotkey handler queue full, dropping press", "key", key.String())
			}
		}
	case wmKeyUp, wmSysKeyUp:
		l.dispatcher.keyUp(key)
	}
}
