// Package selftest checks the codec exhaustively over its whole input
// domain.
package selftest

import (
	"github.com/harlequix/hamming/internal/encoding"
	log "github.com/harlequix/hamming/log"
)

var logger *log.Logger

func init() {
	logger = log.NewLogger("Selftest")
}

// Check is one property and how many of its cases failed.
type Check struct {
	Name     string
	Cases    int
	Failures int
}

func (c Check) Passed() bool {
	return c.Failures == 0
}

type Report struct {
	Checks []Check
	// DoubleFlips counts two-bit error patterns; DoubleMisdecoded how many of
	// them decode to the wrong nibble. Not a failure: the code cannot
	// correct them.
	DoubleFlips      int
	DoubleMisdecoded int
}

func (r Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

func Run() Report {
	report := Report{
		Checks: []Check{
			roundTrip(),
			singleFlips(),
			parityFlips(),
			byteRoundTrip(),
		},
	}
	report.DoubleFlips, report.DoubleMisdecoded = doubleFlips()
	for _, c := range report.Checks {
		entry := logger.WithField("check", c.Name).WithField("cases", c.Cases)
		if c.Passed() {
			entry.Debug("Check passed")
		} else {
			entry.WithField("failures", c.Failures).Error("Check failed")
		}
	}
	return report
}

func roundTrip() Check {
	c := Check{Name: "nibble round trip"}
	for n := byte(0); n < 16; n++ {
		c.Cases++
		res := encoding.Decode(encoding.EncodeNibble(n))
		if res.Value != n || res.Status != encoding.NoError {
			c.Failures++
		}
	}
	return c
}

func singleFlips() Check {
	c := Check{Name: "single bit correction"}
	for n := byte(0); n < 16; n++ {
		cw := encoding.EncodeNibble(n)
		for pos := uint(0); pos < 7; pos++ {
			c.Cases++
			if encoding.DecodeNibble(cw^1<<pos) != n {
				c.Failures++
			}
		}
	}
	return c
}

func parityFlips() Check {
	c := Check{Name: "parity bit flip"}
	parity := []byte{0x40, 0x20, 0x08}
	for n := byte(0); n < 16; n++ {
		cw := encoding.EncodeNibble(n)
		for _, p := range parity {
			c.Cases++
			res := encoding.Decode(cw ^ p)
			if res.Value != n || res.Status != encoding.ParityBitError {
				c.Failures++
			}
		}
	}
	return c
}

func byteRoundTrip() Check {
	c := Check{Name: "byte round trip"}
	for b := 0; b < 256; b++ {
		c.Cases++
		if encoding.DecodeByteWord(encoding.EncodeByteWord(byte(b))) != byte(b) {
			c.Failures++
		}
	}
	return c
}

func doubleFlips() (total, wrong int) {
	for n := byte(0); n < 16; n++ {
		cw := encoding.EncodeNibble(n)
		for a := uint(0); a < 7; a++ {
			for b := a + 1; b < 7; b++ {
				total++
				if encoding.DecodeNibble(cw^1<<a^1<<b) != n {
					wrong++
				}
			}
		}
	}
	return total, wrong
}
