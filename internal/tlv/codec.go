// Package tlv implements the legacy binary front-end: frames of
// (type:uint16, length:uint16, value) carrying nested field TLVs. The wire
// format is stable for existing clients; new capability is added with new
// message types and field tags, never by changing existing ones.
package tlv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxValueLen is the largest frame payload expressible in the length field.
const MaxValueLen = 0xFFFF

var (
	// ErrFrameTooLarge indicates a payload exceeding the uint16 length field.
	ErrFrameTooLarge = errors.New("tlv: frame too large")
	// ErrMalformed indicates a truncated or inconsistent field encoding.
	ErrMalformed = errors.New("tlv: malformed payload")
)

// Frame is one wire message: a type tag and an opaque payload of nested
// field TLVs.
type Frame struct {
	Type  uint16
	Value []byte
}

// WriteFrame writes a single frame in network byte order.
func WriteFrame(w io.Writer, f Frame) error {
	if len(f.Value) > MaxValueLen {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(f.Value))
	}
	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], f.Type)
	binary.BigEndian.PutUint16(hdr[2:4], uint16(len(f.Value)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if len(f.Value) > 0 {
		if _, err := w.Write(f.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrame reads a single frame. io.EOF is returned unchanged on a clean
// connection close between frames.
func ReadFrame(r io.Reader) (Frame, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, fmt.Errorf("%w: truncated header", ErrMalformed)
		}
		return Frame{}, err
	}
	f := Frame{Type: binary.BigEndian.Uint16(hdr[0:2])}
	n := binary.BigEndian.Uint16(hdr[2:4])
	if n > 0 {
		f.Value = make([]byte, n)
		if _, err := io.ReadFull(r, f.Value); err != nil {
			return Frame{}, fmt.Errorf("%w: truncated payload", ErrMalformed)
		}
	}
	return f, nil
}

// Fields is an ordered list of (tag, value) pairs nested inside a frame
// payload. Repeated tags are legal and preserved in order.
type Fields []fieldTLV

type fieldTLV struct {
	Tag   uint16
	Value []byte
}

// Append adds a raw field.
func (fs Fields) Append(tag uint16, value []byte) (Fields, error) {
	if len(value) > MaxValueLen {
		return fs, fmt.Errorf("%w: field %d is %d bytes", ErrFrameTooLarge, tag, len(value))
	}
	return append(fs, fieldTLV{Tag: tag, Value: value}), nil
}

// AddString, AddUint16, AddUint32, AddUint64 append typed fields. Errors are
// deferred to Encode so call sites can chain without checks.
func (fs Fields) AddString(tag uint16, v string) Fields {
	out, _ := fs.Append(tag, []byte(v))
	return out
}

func (fs Fields) AddUint16(tag uint16, v uint16) Fields {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	out, _ := fs.Append(tag, b[:])
	return out
}

func (fs Fields) AddUint32(tag uint16, v uint32) Fields {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	out, _ := fs.Append(tag, b[:])
	return out
}

func (fs Fields) AddUint64(tag uint16, v uint64) Fields {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	out, _ := fs.Append(tag, b[:])
	return out
}

// AddNested appends a field whose value is itself an encoded field list.
func (fs Fields) AddNested(tag uint16, nested Fields) Fields {
	enc, err := nested.Encode()
	if err != nil {
		return fs
	}
	out, _ := fs.Append(tag, enc)
	return out
}

// Encode serializes the fields back to back.
func (fs Fields) Encode() ([]byte, error) {
	size := 0
	for _, f := range fs {
		size += 4 + len(f.Value)
	}
	if size > MaxValueLen {
		return nil, fmt.Errorf("%w: %d bytes of fields", ErrFrameTooLarge, size)
	}
	out := make([]byte, 0, size)
	for _, f := range fs {
		var hdr [4]byte
		binary.BigEndian.PutUint16(hdr[0:2], f.Tag)
		binary.BigEndian.PutUint16(hdr[2:4], uint16(len(f.Value)))
		out = append(out, hdr[:]...)
		out = append(out, f.Value...)
	}
	return out, nil
}

// ParseFields decodes a payload into its field list.
func ParseFields(b []byte) (Fields, error) {
	var fs Fields
	for len(b) > 0 {
		if len(b) < 4 {
			return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(b))
		}
		tag := binary.BigEndian.Uint16(b[0:2])
		n := int(binary.BigEndian.Uint16(b[2:4]))
		b = b[4:]
		if len(b) < n {
			return nil, fmt.Errorf("%w: field %d wants %d bytes, %d left", ErrMalformed, tag, n, len(b))
		}
		fs = append(fs, fieldTLV{Tag: tag, Value: b[:n]})
		b = b[n:]
	}
	return fs, nil
}

// String returns the first occurrence of tag as a string.
func (fs Fields) String(tag uint16) (string, bool) {
	for _, f := range fs {
		if f.Tag == tag {
			return string(f.Value), true
		}
	}
	return "", false
}

// Strings returns every occurrence of tag, in order.
func (fs Fields) Strings(tag uint16) []string {
	var out []string
	for _, f := range fs {
		if f.Tag == tag {
			out = append(out, string(f.Value))
		}
	}
	return out
}

func (fs Fields) Uint16(tag uint16) (uint16, bool) {
	for _, f := range fs {
		if f.Tag == tag && len(f.Value) == 2 {
			return binary.BigEndian.Uint16(f.Value), true
		}
	}
	return 0, false
}

func (fs Fields) Uint32(tag uint16) (uint32, bool) {
	for _, f := range fs {
		if f.Tag == tag && len(f.Value) == 4 {
			return binary.BigEndian.Uint32(f.Value), true
		}
	}
	return 0, false
}

func (fs Fields) Uint64(tag uint16) (uint64, bool) {
	for _, f := range fs {
		if f.Tag == tag && len(f.Value) == 8 {
			return binary.BigEndian.Uint64(f.Value), true
		}
	}
	return 0, false
}

// Nested returns every occurrence of tag parsed as a nested field list.
func (fs Fields) Nested(tag uint16) ([]Fields, error) {
	var out []Fields
	for _, f := range fs {
		if f.Tag != tag {
			continue
		}
		inner, err := ParseFields(f.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, inner)
	}
	return out, nil
}
