package actuator

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux input event types and codes used by the virtual pointer.
const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	synReport = 0x00
	btnLeft   = 0x110

	absX = 0x00
	absY = 0x01
)

// ioctl request encoding (Linux _IOC macro).
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocNone  = 0
	iocWrite = 1
)

func ioc(dir, typ, nr, size uint32) uintptr {
	return uintptr((dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift))
}

// uinput ioctl requests.
var (
	uiSetEvBit   = ioc(iocWrite, 'U', 100, uint32(unsafe.Sizeof(int32(0))))
	uiSetKeyBit  = ioc(iocWrite, 'U', 101, uint32(unsafe.Sizeof(int32(0))))
	uiSetAbsBit  = ioc(iocWrite, 'U', 103, uint32(unsafe.Sizeof(int32(0))))
	uiDevCreate  = ioc(iocNone, 'U', 1, 0)
	uiDevDestroy = ioc(iocNone, 'U', 2, 0)
)

const absAxes = 64

// uinputUserDev mirrors struct uinput_user_dev.
type uinputUserDev struct {
	Name         [80]byte
	Bustype      uint16
	Vendor       uint16
	Product      uint16
	Version      uint16
	FFEffectsMax uint32
	AbsMax       [absAxes]int32
	AbsMin       [absAxes]int32
	AbsFuzz      [absAxes]int32
	AbsFlat      [absAxes]int32
}

// Uinput injects pointer events through a virtual absolute-pointing device
// created via /dev/uinput. Coordinates arriving as sub-pixel floats are
// rounded to device pixels here, at the edge of the system.
type Uinput struct {
	fd      int
	screenW int
	screenH int
}

// NewUinput creates the virtual device sized to the given screen resolution.
// Requires write access to /dev/uinput.
func NewUinput(screenWidth, screenHeight int) (*Uinput, error) {
	fd, err := unix.Open("/dev/uinput", unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open /dev/uinput: %w", err)
	}

	u := &Uinput{fd: fd, screenW: screenWidth, screenH: screenHeight}

	setup := []struct {
		req uintptr
		arg int32
	}{
		{uiSetEvBit, evKey},
		{uiSetEvBit, evAbs},
		{uiSetEvBit, evSyn},
		{uiSetKeyBit, btnLeft},
		{uiSetAbsBit, absX},
		{uiSetAbsBit, absY},
	}
	for _, s := range setup {
		if err := u.ioctlInt(s.req, s.arg); err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("configure uinput device: %w", err)
		}
	}

	var dev uinputUserDev
	copy(dev.Name[:], "airpoint virtual pointer")
	dev.Bustype = 0x06 // BUS_VIRTUAL
	dev.Vendor = 0x1
	dev.Product = 0x1
	dev.Version = 1
	dev.AbsMin[absX] = 0
	dev.AbsMax[absX] = int32(screenWidth - 1)
	dev.AbsMin[absY] = 0
	dev.AbsMax[absY] = int32(screenHeight - 1)

	buf := (*[unsafe.Sizeof(dev)]byte)(unsafe.Pointer(&dev))[:]
	if _, err := unix.Write(fd, buf); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("write device descriptor: %w", err)
	}

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uiDevCreate, 0); errno != 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("create uinput device: %w", errno)
	}

	return u, nil
}

func (u *Uinput) ioctlInt(req uintptr, arg int32) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(u.fd), req, uintptr(arg)); errno != 0 {
		return errno
	}
	return nil
}

// emit writes one input_event. The kernel struct carries a timeval the
// kernel fills in itself, so the timestamp fields are left zero.
func (u *Uinput) emit(etype, code uint16, value int32) error {
	// 64-bit input_event: 16 bytes timeval + type + code + value.
	ev := make([]byte, 24)
	binary.LittleEndian.PutUint16(ev[16:18], etype)
	binary.LittleEndian.PutUint16(ev[18:20], code)
	binary.LittleEndian.PutUint32(ev[20:24], uint32(value))

	if _, err := unix.Write(u.fd, ev); err != nil {
		return fmt.Errorf("emit input event: %w", err)
	}
	return nil
}

func (u *Uinput) sync() error {
	return u.emit(evSyn, synReport, 0)
}

// MoveTo positions the pointer at absolute screen coordinates. Values
// outside the screen rectangle are clamped by the device's axis range.
func (u *Uinput) MoveTo(x, y float64) error {
	if err := u.emit(evAbs, absX, int32(x+0.5)); err != nil {
		return err
	}
	if err := u.emit(evAbs, absY, int32(y+0.5)); err != nil {
		return err
	}
	return u.sync()
}

// Click issues a full left-button down+up pulse.
func (u *Uinput) Click() error {
	if err := u.Press(); err != nil {
		return err
	}
	return u.Release()
}

// Press holds the left button down.
func (u *Uinput) Press() error {
	if err := u.emit(evKey, btnLeft, 1); err != nil {
		return err
	}
	return u.sync()
}

// Release lets the left button up.
func (u *Uinput) Release() error {
	if err := u.emit(evKey, btnLeft, 0); err != nil {
		return err
	}
	return u.sync()
}

// Close destroys the virtual device.
func (u *Uinput) Close() error {
	if u.fd < 0 {
		return nil
	}
	unix.Syscall(unix.SYS_IOCTL, uintptr(u.fd), uiDevDestroy, 0)
	err := unix.Close(u.fd)
	u.fd = -1
	return err
}
