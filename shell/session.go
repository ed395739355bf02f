package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/jinzhu/copier"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/harlequix/hamming/internal/format"
	log "github.com/harlequix/hamming/log"
)

const (
	CmdEncode string = "encode"
	CmdDecode string = "decode"
)

var ErrMissingArgument = errors.New("missing argument")

type Stats struct {
	Encoded      uint64
	Decoded      uint64
	Corrected    uint64
	ParityErrors uint64
}

// Session runs the encode/decode command loop over a token stream.
type Session struct {
	// first for 64-bit alignment of the atomic counters
	stats   Stats
	scanner *bufio.Scanner
	out     io.Writer
	config  Config
	logger  *log.Logger
	events  *Events
}

func NewSession(in io.Reader, out io.Writer, config Config) (*Session, error) {
	s := &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  log.NewLogger("Shell"),
		events:  NewEvents(),
	}
	if err := copier.CopyWithOption(&s.config, &config, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	s.scanner.Split(bufio.ScanWords)
	return s, nil
}

// Run executes commands until input ends, an unknown command is read or
// ctx is cancelled. Unknown commands end the session without error.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if s.config.Prompt != "" {
			fmt.Fprint(s.out, s.config.Prompt)
		}
		tok, ok := s.next()
		if !ok {
			return s.scanner.Err()
		}
		var err error
		switch cmd := s.config.resolve(tok); cmd {
		case CmdEncode:
			err = s.encode()
		case CmdDecode:
			err = s.decode()
		default:
			s.logger.WithField("command", tok).Debug("End of session")
			return nil
		}
		if err != nil {
			s.logger.WithError(err).WithField("command", tok).Warn("Command failed")
			return err
		}
	}
}

// Subscribe registers ch for EventCorrected or EventParityError. Call it
// before Run.
func (s *Session) Subscribe(event string, ch chan string) {
	s.events.Subscribe(event, ch)
}

func (s *Session) Stats() Stats {
	return Stats{
		Encoded:      atomic.LoadUint64(&s.stats.Encoded),
		Decoded:      atomic.LoadUint64(&s.stats.Decoded),
		Corrected:    atomic.LoadUint64(&s.stats.Corrected),
		ParityErrors: atomic.LoadUint64(&s.stats.ParityErrors),
	}
}

func (s *Session) next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Session) literal(cmd string) (byte, error) {
	tok, ok := s.next()
	if !ok {
		if err := s.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%s: %w", cmd, ErrMissingArgument)
	}
	v, err := encoding.ParseBinary(tok)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cmd, err)
	}
	return v, nil
}

func (s *Session) encode() error {
	data, err := s.literal(CmdEncode)
	if err != nil {
		return err
	}
	high, low := encoding.EncodeByte(data)
	atomic.AddUint64(&s.stats.Encoded, 1)
	s.logger.WithField("data", encoding.FormatBinary8(data)).Debug("Encode")

	fmt.Fprintf(s.out, "Encoded: %s %s\n", encoding.FormatBinary8(high), encoding.FormatBinary8(low))
	if s.config.Verbose {
		s.explain(high, encoding.Decode(high))
		s.explain(low, encoding.Decode(low))
	}
	return nil
}

func (s *Session) decode() error {
	high, err := s.literal(CmdDecode)
	if err != nil {
		return err
	}
	low, err := s.literal(CmdDecode)
	if err != nil {
		return err
	}
	resHigh, resLow := encoding.Decode(high), encoding.Decode(low)
	s.record(high, resHigh)
	s.record(low, resLow)
	atomic.AddUint64(&s.stats.Decoded, 1)

	fmt.Fprintln(s.out, "Decoded:")
	fmt.Fprintln(s.out, encoding.FormatBinary8(encoding.DecodeByte(high, low)))
	if s.config.Verbose {
		s.explain(high, resHigh)
		s.explain(low, resLow)
	}
	return nil
}

func (s *Session) record(codeword byte, res encoding.Result) {
	syndrome := fmt.Sprintf("%03b", res.Syndrome)
	msg := fmt.Sprintf("%07b syndrome %s", codeword&0x7F, syndrome)
	switch res.Status {
	case encoding.Corrected:
		atomic.AddUint64(&s.stats.Corrected, 1)
		s.logger.WithField("syndrome", syndrome).Info("Corrected data bit")
		s.events.Emit(EventCorrected, msg)
	case encoding.ParityBitError:
		atomic.AddUint64(&s.stats.ParityErrors, 1)
		s.logger.WithField("syndrome", syndrome).Info("Parity bit in error")
		s.events.Emit(EventParityError, msg)
	}
}

func (s *Session) explain(codeword byte, res encoding.Result) {
	fmt.Fprint(s.out, format.Annotate(codeword, res))
}
