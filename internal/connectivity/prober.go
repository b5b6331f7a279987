package connectivity

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
)

// Prober answers whether the host currently has validated internet access.
type Prober interface {
	Probe(ctx context.Context) (bool, error)
}

// Interface is the part of a network interface the prober cares about.
type Interface struct {
	Name     string
	Up       bool
	Loopback bool
	HasAddr  bool
}

// NetProber requires a usable non-loopback interface and a successful
// request to a captive-portal style endpoint. An interface behind a portal
// fails the second check.
type NetProber struct {
	client     *resty.Client
	probeURL   string
	interfaces func() ([]Interface, error)
}

func NewNetProber(probeURL string, timeout time.Duration) *NetProber {
	return &NetProber{
		client: resty.New().
			SetTimeout(timeout).
			SetRedirectPolicy(resty.NoRedirectPolicy()),
		probeURL:   probeURL,
		interfaces: systemInterfaces,
	}
}

func (p *NetProber) Probe(ctx context.Context) (bool, error) {
	ifaces, err := p.interfaces()
	if err != nil {
		return false, fmt.Errorf("list interfaces: %w", err)
	}
	if !hasUsableInterface(ifaces) {
		return false, nil
	}

	resp, err := p.client.R().
		SetContext(ctx).
		Get(p.probeURL)
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", p.probeURL, err)
	}

	return resp.StatusCode() >= 200 && resp.StatusCode() < 300, nil
}

func hasUsableInterface(ifaces []Interface) bool {
	for _, iface := range ifaces {
		if iface.Up && !iface.Loopback && iface.HasAddr {
			return true
		}
	}
	return false
}

func systemInterfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	out := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		out = append(out, Interface{
			Name:     iface.Name,
			Up:       iface.Flags&net.FlagUp != 0,
			Loopback: iface.Flags&net.FlagLoopback != 0,
			HasAddr:  err == nil && len(addrs) > 0,
		})
	}
	return out, nil
}
