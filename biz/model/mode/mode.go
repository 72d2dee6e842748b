// Package mode holds the process-wide execution mode of the demo: "vuln"
// builds query text by interpolation and compares plaintext passwords,
// "secure" binds parameters and checks password hashes.
package mode

import "strings"

type Mode string

const (
	Vuln   Mode = "vuln"
	Secure Mode = "secure"
)

// Parse normalises a configured value. Anything that is not "vuln" falls
// back to Secure.
func Parse(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Vuln:
		return Vuln
	default:
		return Secure
	}
}

func (m Mode) IsVuln() bool {
	return m == Vuln
}

func (m Mode) String() string {
	return string(m)
}
