// Package connectivity decides whether the remote store is reachable and
// reports online/offline transitions by polling.
package connectivity

import (
	"context"
	"errors"
	"net"
)

var ErrNoNetwork = errors.New("no active network interface")

// Prober is one reachability check. A nil error means reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

type ProberFunc func(ctx context.Context) error

func (f ProberFunc) Probe(ctx context.Context) error { return f(ctx) }

// InterfaceProber passes when some non-loopback interface is up: the device
// has a network at all.
type InterfaceProber struct {
	interfaces func() ([]net.Interface, error)
}

func NewInterfaceProber() *InterfaceProber {
	return &InterfaceProber{interfaces: net.Interfaces}
}

func (p *InterfaceProber) Probe(ctx context.Context) error {
	ifaces, err := p.interfaces()
	if err != nil {
		return err
	}
	for _, i := range ifaces {
		if i.Flags&net.FlagUp != 0 && i.Flags&net.FlagLoopback == 0 {
			return nil
		}
	}
	return ErrNoNetwork
}

// Pinger is anything that can answer a health check, the remote store in practice.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RemoteProber passes when the remote store answers Ping.
type RemoteProber struct {
	remote Pinger
}

func NewRemoteProber(remote Pinger) *RemoteProber {
	return &RemoteProber{remote: remote}
}

func (p *RemoteProber) Probe(ctx context.Context) error {
	return p.remote.Ping(ctx)
}
