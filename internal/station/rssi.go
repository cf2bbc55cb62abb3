package station

import (
	"os"
	"strconv"
	"strings"
)

const procWireless = "/proc/net/wireless"

// ReadRSSI reports the wifi signal level in dBm from the kernel, or 0
// when the host has no wireless interface. Best effort, like the
// battery reading: a wired host simply shows no signal.
func ReadRSSI() int {
	return readRSSI(procWireless)
}

// readRSSI parses the kernel's wireless status table, one interface per
// line after a two line header:
//
//	Inter-| sta-|   Quality        |   Discarded packets
//	 face | tus | link level noise |  nwid  crypt   frag
//	wlan0: 0000   54.  -56.  -256        0      0      0
func readRSSI(path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	for i, line := range strings.Split(string(raw), "\n") {
		if i < 2 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 || !strings.HasSuffix(fields[0], ":") {
			continue
		}
		level, err := strconv.ParseFloat(strings.TrimSuffix(fields[3], "."), 64)
		if err != nil {
			continue
		}
		return int(level)
	}
	return 0
}
