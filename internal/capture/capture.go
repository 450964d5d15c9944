// Package capture records a subprocess output stream into a temp-file
// backed store and reads it back, bounded, after the process exits.
package capture

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// NoLimit disables truncation in ReadTruncated.
const NoLimit = -1

// DefaultRelaxPercent is the tolerance window applied to the size limit:
// content that exceeds the limit by less than this percentage passes
// through whole instead of being truncated for a negligible overage.
const DefaultRelaxPercent = 10

// DecodeError reports captured bytes that are not valid under the
// requested encoding. Malformed output is a hard error, never silently
// replaced.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode output as %s: %v", e.Encoding, e.Err)
	}
	return fmt.Sprintf("decode output as %s: invalid byte sequence", e.Encoding)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Stream is a temp-file backed recording of one output stream. It is
// written while the child process runs and read exactly once after the
// process has terminated.
type Stream struct {
	f *os.File
}

// NewStream creates the temporary backing store for one stream.
func NewStream(name string) (*Stream, error) {
	f, err := os.CreateTemp("", "slack-notify-"+name+"-*")
	if err != nil {
		return nil, fmt.Errorf("create capture store: %w", err)
	}
	return &Stream{f: f}, nil
}

// File exposes the backing store for wiring into an exec.Cmd.
func (s *Stream) File() *os.File { return s.f }

// Close releases the backing store. Safe on every return path.
func (s *Stream) Close() error {
	name := s.f.Name()
	err := s.f.Close()
	if rmErr := os.Remove(name); err == nil {
		err = rmErr
	}
	return err
}

// Size returns the total number of bytes the source produced.
func (s *Stream) Size() (int64, error) {
	fi, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat capture store: %w", err)
	}
	return fi.Size(), nil
}

// ReadTruncated returns the captured content decoded with the named
// encoding. When limit is NoLimit the whole content is returned. When the
// total size stays under limit*(1+relaxPercent/100) the content also
// passes through whole. Otherwise exactly limit bytes are returned with a
// trailing "[...N bytes truncated]" marker on its own line.
func (s *Stream) ReadTruncated(limit int64, relaxPercent float64, encoding string) (string, error) {
	size, err := s.Size()
	if err != nil {
		return "", err
	}
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind capture store: %w", err)
	}

	readLimit := size
	var omitted int64
	if limit >= 0 {
		if float64(size) < float64(limit)*(1+relaxPercent/100) {
			readLimit = size
		} else {
			readLimit = limit
			omitted = size - limit
		}
	}

	buf := make([]byte, readLimit)
	if _, err := io.ReadFull(s.f, buf); err != nil {
		return "", fmt.Errorf("read capture store: %w", err)
	}

	text, err := decode(buf, encoding)
	if err != nil {
		return "", err
	}
	if omitted > 0 {
		text = text + "\n" + fmt.Sprintf("[...%d bytes truncated]", omitted)
	}
	return text, nil
}

// decode converts raw bytes using the named encoding. UTF-8 input is
// validated strictly; other names resolve through the IANA registry.
func decode(data []byte, name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		if !utf8.Valid(data) {
			return "", &DecodeError{Encoding: "utf-8"}
		}
		return string(data), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return "", &DecodeError{Encoding: name, Err: err}
	}
	if enc == nil {
		return "", &DecodeError{Encoding: name, Err: fmt.Errorf("unsupported encoding")}
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Encoding: name, Err: err}
	}
	return string(out), nil
}
