package network

import (
	"fmt"
	"net"
	"strings"

	"github.com/cbodonnell/lumen/pkg/log"
)

// Interface is a network interface and its addresses.
type Interface struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// InterfaceLister lists the network interfaces of the host.
type InterfaceLister interface {
	Interfaces() ([]Interface, error)
}

// SystemInterfaces lists the interfaces reported by the operating system.
type SystemInterfaces struct{}

func (SystemInterfaces) Interfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %v", err)
	}
	result := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			log.Debug("Failed to list addresses of interface %s: %v", iface.Name, err)
			continue
		}
		result = append(result, Interface{
			Name:  iface.Name,
			Flags: iface.Flags,
			Addrs: addrs,
		})
	}
	return result, nil
}

// virtualPrefixes are name prefixes of bridges, tunnels and hypervisor
// interfaces that a device on the local network cannot reach us through.
var virtualPrefixes = []string{
	"docker",
	"veth",
	"br-",
	"virbr",
	"vmnet",
	"vboxnet",
	"utun",
	"tun",
	"tap",
}

// IsVirtual returns true for alias, point-to-point and well-known virtual
// interfaces.
func (i Interface) IsVirtual() bool {
	if strings.Contains(i.Name, ":") || i.Flags&net.FlagPointToPoint != 0 {
		return true
	}
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(i.Name, prefix) {
			return true
		}
	}
	return false
}

// ResolveBindAddress returns the first non-loopback IPv4 address of an
// interface that is up, not a loopback and not virtual. When there is none
// it returns the IPv4 wildcard address.
func ResolveBindAddress(lister InterfaceLister) net.IP {
	ifaces, err := lister.Interfaces()
	if err != nil {
		log.Warn("Failed to resolve bind address: %v; binding to 0.0.0.0", err)
		return net.IPv4zero
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 || iface.IsVirtual() {
			continue
		}
		for _, addr := range iface.Addrs {
			ip := addrIP(addr)
			if ip == nil || ip.IsLoopback() {
				continue
			}
			if ip4 := ip.To4(); ip4 != nil {
				return ip4
			}
		}
	}
	log.Warn("No non-loopback IPv4 address found; binding to 0.0.0.0")
	return net.IPv4zero
}

func addrIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.IPNet:
		return a.IP
	case *net.IPAddr:
		return a.IP
	default:
		return nil
	}
}
