package docdiff

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strconv"
	"strings"
)

const (
	Version = 'A'
	opToken = 'T'
	opCRC   = 'K'

	// maxRecordDigits bounds the hex length prefix of a record.
	maxRecordDigits = 9
)

var (
	ErrCRC            = errors.New("CRC mismatch")
	ErrMalformedPatch = errors.New("malformed patch")
)

// MakePatch encodes r as a compact token patch. Applying the patch to the old
// token sequence yields the new one. Only inserted tokens are stored; matched
// and deleted tokens are referenced by count.
//
// The layout is the version byte followed by runs of "<hex count><op>", where op
// is one of M, D or I. An insert run is followed by count token records of the
// form "<hex byte length>T<bytes>". A trailing "<hex crc32>K" closes the patch.
func MakePatch(r *Result, o ...FuncOption) []byte {
	cfg := newConfig(o)

	patch := []byte{Version}

	for n := 0; n < len(r.Ops); {
		op := r.Ops[n].Type
		end := n
		for end < len(r.Ops) && r.Ops[end].Type == op {
			end++
		}

		patch = strconv.AppendInt(patch, int64(end-n), 16)
		patch = append(patch, byte(op))

		if op == OpInsert {
			for _, ins := range r.Ops[n:end] {
				patch = strconv.AppendInt(patch, int64(len(ins.Token)), 16)
				patch = append(patch, opToken)
				patch = append(patch, ins.Token...)
			}
		}
		n = end
	}

	var crc uint32
	if !cfg.noCRC {
		crc = checksum(r.New())
	}
	patch = append(patch, []byte(fmt.Sprintf("%x%c", crc, opCRC))...)

	return patch
}

// ApplyPatch replays patch against old and returns the new token sequence.
func ApplyPatch(old []string, patch []byte, o ...FuncOption) ([]string, error) {
	cfg := newConfig(o)

	r := newTrackedReader(patch)

	ver, err := r.ReadByte()
	if err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	if ver != Version {
		return nil, fmt.Errorf("unknown version %q", ver)
	}

	var out []string
	i := 0

	for {
		n, op, err := readRecord(r)
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}

		switch op {
		case byte(OpMatch), byte(OpDelete):
			if n > len(old)-i {
				return nil, fmt.Errorf("%w: run of %d exceeds remaining %d old tokens, pos: %d",
					ErrMalformedPatch, n, len(old)-i, r.pos())
			}
			if op == byte(OpMatch) {
				out = append(out, old[i:i+n]...)
			}
			i += n
		case byte(OpInsert):
			for ; n > 0; n-- {
				tok, err := readToken(r)
				if err != nil {
					return nil, err
				}
				out = append(out, tok)
			}
		case opCRC:
			if i != len(old) {
				return nil, fmt.Errorf("%w: %d old tokens left unconsumed", ErrMalformedPatch, len(old)-i)
			}
			if out == nil {
				out = []string{}
			}
			crc := uint32(n)
			if !cfg.noCRC && crc != 0 && checksum(out) != crc {
				return nil, ErrCRC
			}
			return out, nil
		default:
			return nil, fmt.Errorf("%w: unexpected operation %q, pos: %d", ErrMalformedPatch, op, r.pos())
		}
	}
}

func checksum(tokens []string) uint32 {
	return crc32.ChecksumIEEE([]byte(strings.Join(tokens, " ")))
}

func readToken(r *trackedReader) (string, error) {
	n, op, err := readRecord(r)
	if err == io.EOF {
		return "", io.ErrUnexpectedEOF
	} else if err != nil {
		return "", err
	}
	if op != opToken {
		return "", fmt.Errorf("%w: expected token record, got %q, pos: %d", ErrMalformedPatch, op, r.pos())
	}
	if n > r.Len() {
		return "", io.ErrUnexpectedEOF
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", io.ErrUnexpectedEOF
	}
	return string(buf), nil
}

func readRecord(r *trackedReader) (int, byte, error) {
	s := make([]byte, 0, maxRecordDigits+1)

	for {
		c, err := r.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
			s = append(s, c)
			if len(s) > maxRecordDigits {
				return 0, 0, fmt.Errorf("%w: expected operation code, pos: %d", ErrMalformedPatch, r.pos())
			}
		case c == byte(OpMatch), c == byte(OpInsert), c == byte(OpDelete), c == opToken, c == opCRC:
			if len(s) == 0 {
				return 0, 0, fmt.Errorf("%w: missing operation length, pos: %d", ErrMalformedPatch, r.pos())
			}
			l, err := strconv.ParseInt(string(s), 16, 64)
			if err != nil {
				return 0, 0, fmt.Errorf("error decoding length: %w, pos: %d", err, r.pos())
			}
			return int(l), c, nil
		default:
			return 0, 0, fmt.Errorf("%w: error decoding operation %q, pos: %d", ErrMalformedPatch, string(c), r.pos())
		}
	}
}

type trackedReader struct {
	*bytes.Reader
}

func newTrackedReader(b []byte) *trackedReader {
	return &trackedReader{
		Reader: bytes.NewReader(b),
	}
}

func (t *trackedReader) pos() int64 {
	return t.Size() - int64(t.Len())
}
