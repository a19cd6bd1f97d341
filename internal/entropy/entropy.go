// Package entropy gathers machine and process specific bytes used as input
// keying material for secret derivation.
//
// The collected layout is fixed:
//
//	MAC address text (uppercase) | "<unix nanos>:<unix micros>" | pid (8 bytes) | 32 random bytes | hostname
//
// Collection fails with ErrNoHardwareIdentifier when no network interface
// with a hardware address exists. Nothing weaker is substituted for it.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	kerrors "github.com/echosistema/ironmonger/internal/errors"
)

const (
	// RandomSize is the number of secure random bytes mixed into the entropy.
	RandomSize = 32

	// PIDSize is the width of the process id field.
	PIDSize = 8

	// UnknownHostname replaces the hostname when it cannot be read.
	UnknownHostname = "unknown"
)

// Collector produces raw entropy bytes.
type Collector interface {
	Collect() ([]byte, error)
}

// System collects entropy from the running machine. Every source can be
// replaced, which lets tests pin the output.
type System struct {
	Interfaces func() ([]net.Interface, error)
	Now        func() time.Time
	PID        func() int
	Rand       io.Reader
	Hostname   func() (string, error)
}

// NewSystem returns a collector backed by the operating system.
func NewSystem() *System {
	return &System{
		Interfaces: net.Interfaces,
		Now:        time.Now,
		PID:        os.Getpid,
		Rand:       rand.Reader,
		Hostname:   os.Hostname,
	}
}

// Collect concatenates the hardware identifier, timestamp, process id,
// random bytes and hostname, in that order.
func (s *System) Collect() ([]byte, error) {
	mac, err := s.hardwareAddr()
	if err != nil {
		return nil, err
	}

	random, err := s.randomBytes()
	if err != nil {
		return nil, err
	}

	ts := s.timestamp()
	pid := s.processID()
	host := s.hostname()

	out := make([]byte, 0, len(mac)+len(ts)+PIDSize+RandomSize+len(host))
	out = append(out, mac...)
	out = append(out, ts...)
	out = append(out, pid[:]...)
	out = append(out, random...)
	out = append(out, host...)
	return out, nil
}

func (s *System) hardwareAddr() (string, error) {
	ifaces, err := s.Interfaces()
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrNoHardwareIdentifier, err)
	}
	addr := PrimaryHardwareAddr(ifaces)
	if addr == nil {
		return "", kerrors.ErrNoHardwareIdentifier
	}
	return FormatHardwareAddr(addr), nil
}

// FormatHardwareAddr renders addr as uppercase colon separated hex pairs,
// e.g. "02:42:AC:11:00:02".
func FormatHardwareAddr(addr net.HardwareAddr) string {
	return strings.ToUpper(addr.String())
}

// PrimaryHardwareAddr returns the hardware address of the first interface,
// in enumeration order, that is not loopback and has one. Returns nil when
// there is none.
func PrimaryHardwareAddr(ifaces []net.Interface) net.HardwareAddr {
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) == 0 {
			continue
		}
		if allZero(iface.HardwareAddr) {
			continue
		}
		return iface.HardwareAddr
	}
	return nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// timestamp renders one clock reading at nanosecond and microsecond precision.
func (s *System) timestamp() string {
	now := s.Now()
	return strconv.FormatInt(now.UnixNano(), 10) + ":" + strconv.FormatInt(now.UnixMicro(), 10)
}

// processID widens the 32-bit pid to 8 bytes by repeating its little-endian
// encoding instead of zero padding it.
func (s *System) processID() [PIDSize]byte {
	var out [PIDSize]byte
	binary.LittleEndian.PutUint32(out[0:4], uint32(s.PID()))
	copy(out[4:8], out[0:4])
	return out
}

func (s *System) randomBytes() ([]byte, error) {
	b := make([]byte, RandomSize)
	if _, err := io.ReadFull(s.Rand, b); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrRandomSource, err)
	}
	return b, nil
}

func (s *System) hostname() string {
	h, err := s.Hostname()
	if err != nil {
		return UnknownHostname
	}
	return h
}
