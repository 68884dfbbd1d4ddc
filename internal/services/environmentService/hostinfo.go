package environmentservice

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/jackpal/gateway"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo bundles the host identity the environment facade exposes,
// gathered once per call.
type HostInfo struct {
	// e.g. "Linux", "Darwin", "Windows"
	OSName string
	// e.g. "Ubuntu 24.04.1 LTS", "Windows 11 Pro 23H2"
	OSDisplayName string
	// kernel / OS version string
	OSVersion string
	// e.g. "amd64", "arm64"
	Architecture string

	NodeName string
	// primary MAC address, "" when none
	NodeID string

	ProcessorCount int
	CPUModel       string
	CPUVendor      string

	Uptime time.Duration

	Interfaces []NetworkInterface
	GatewayIPs []string
}

// NetworkInterface describes one network interface of the host.
type NetworkInterface struct {
	Name            string
	HardwareAddress string
	IPAddresses     []string
	Up              bool
	Loopback        bool
}

// GatherHostInfo collects host identification in a cross-platform way.
// Individual detections degrade to empty values rather than failing the
// whole gather.
func GatherHostInfo() *HostInfo {
	info := &HostInfo{
		OSName:         OSName(),
		OSDisplayName:  OSDisplayName(),
		OSVersion:      OSVersion(),
		Architecture:   OSArchitecture(),
		NodeName:       NodeName(),
		NodeID:         NodeID(),
		ProcessorCount: ProcessorCount(),
		CPUModel:       cpuid.CPU.BrandName,
		CPUVendor:      cpuid.CPU.VendorString,
	}

	if uptime, err := host.Uptime(); err == nil {
		info.Uptime = time.Duration(uptime) * time.Second
	}

	info.Interfaces = gatherInterfaces()
	info.GatewayIPs = gatherGateways()

	return info
}

// Format renders host info for terminal output. Network details are
// appended when includeNet is set.
func (h *HostInfo) Format(includeNet bool) string {
	var b strings.Builder

	b.WriteString("Host Information:\n")
	b.WriteString(fmt.Sprintf("  OS:            %s\n", h.OSName))
	b.WriteString(fmt.Sprintf("  Display Name:  %s\n", h.OSDisplayName))
	b.WriteString(fmt.Sprintf("  OS Version:    %s\n", h.OSVersion))
	b.WriteString(fmt.Sprintf("  Architecture:  %s\n", h.Architecture))
	b.WriteString(fmt.Sprintf("  Node Name:     %s\n", h.NodeName))
	b.WriteString(fmt.Sprintf("  Node ID:       %s\n", h.NodeID))
	b.WriteString(fmt.Sprintf("  Processors:    %d\n", h.ProcessorCount))
	b.WriteString(fmt.Sprintf("  CPU Model:     %s\n", h.CPUModel))
	b.WriteString(fmt.Sprintf("  CPU Vendor:    %s\n", h.CPUVendor))
	b.WriteString(fmt.Sprintf("  Uptime:        %s\n", h.Uptime))

	if includeNet {
		b.WriteString("\n")
		b.WriteString(h.NetFormat())
	}

	return b.String()
}

// NetFormat renders only the network side of the host info.
func (h *HostInfo) NetFormat() string {
	var b strings.Builder

	b.WriteString("Network Information:\n")
	for _, iface := range h.Interfaces {
		b.WriteString(fmt.Sprintf("  - %s (%s)\n", iface.Name, iface.HardwareAddress))
		if len(iface.IPAddresses) > 0 {
			b.WriteString(fmt.Sprintf("    IPs: %s\n", strings.Join(iface.IPAddresses, ", ")))
		}
	}

	if len(h.GatewayIPs) > 0 {
		b.WriteString(fmt.Sprintf("  Default Gateways: %s\n", strings.Join(h.GatewayIPs, ", ")))
	}

	return b.String()
}

func gatherInterfaces() []NetworkInterface {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}

	result := make([]NetworkInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		ni := NetworkInterface{
			Name:            iface.Name,
			HardwareAddress: iface.HardwareAddr.String(),
			Up:              iface.Flags&net.FlagUp != 0,
			Loopback:        iface.Flags&net.FlagLoopback != 0,
		}

		if addrs, err := iface.Addrs(); err == nil {
			for _, addr := range addrs {
				ni.IPAddresses = append(ni.IPAddresses, addr.String())
			}
		}

		result = append(result, ni)
	}

	return result
}

func gatherGateways() []string {
	gw, err := gateway.DiscoverGateway()
	if err != nil || gw == nil || gw.Equal(net.IPv4zero) {
		return nil
	}
	return []string{gw.String()}
}
