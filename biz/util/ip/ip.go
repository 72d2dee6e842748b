package ip

import (
	"encoding/hex"
	"net"
	"runtime"
	"sync"
)

var (
	hexOnce sync.Once
	hexIP   string
)

// IPv4Hex returns the first non-loopback IPv4 address of the host as eight
// hex digits, or "00000000" when there is none.
func IPv4Hex() string {
	hexOnce.Do(func() {
		hexIP = lookupIPv4Hex()
	})
	return hexIP
}

func lookupIPv4Hex() string {
	if runtime.GOOS == "windows" {
		return "00000000"
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "00000000"
	}

	for _, addr := range addrs {
		if ip, ok := addr.(*net.IPNet); ok && !ip.IP.IsLoopback() {
			if ipv4 := ip.IP.To4(); ipv4 != nil {
				return hex.EncodeToString(ipv4)
			}
		}
	}

	return "00000000"
}
