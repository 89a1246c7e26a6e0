package trs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"trskit/internal/mathutil"
)

// Binary layout: a little-endian uint32 record count, then per record ten
// scalars tx ty tz qx qy qz qw sx sy sz. Scalars are float32 for Trs and
// float64 for DTrs; the record is the in-memory layout of Transform.

const scalarsPerRecord = 10

// ErrTruncated reports a buffer shorter than its declared record count.
var ErrTruncated = errors.New("trs: truncated buffer")

// RecordSize returns the encoded size of one Transform[T].
func RecordSize[T mathutil.Float]() int {
	var z T
	return scalarsPerRecord * int(unsafe.Sizeof(z))
}

// Marshal encodes ts into the binary layout.
func Marshal[T mathutil.Float](ts []Transform[T]) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(4 + len(ts)*RecordSize[T]())
	if err := Encode(&buf, ts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes ts to w in the binary layout.
func Encode[T mathutil.Float](w io.Writer, ts []Transform[T]) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(ts))); err != nil {
		return fmt.Errorf("trs: write header: %w", err)
	}
	if len(ts) == 0 {
		return nil
	}
	if err := binary.Write(w, binary.LittleEndian, ts); err != nil {
		return fmt.Errorf("trs: write records: %w", err)
	}
	return nil
}

// Unmarshal decodes a binary buffer. Bytes past the last declared record
// are ignored.
func Unmarshal[T mathutil.Float](raw []byte) ([]Transform[T], error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("trs: header: %w", ErrTruncated)
	}
	count := int(binary.LittleEndian.Uint32(raw[:4]))
	size := RecordSize[T]()
	if (len(raw)-4)/size < count {
		return nil, fmt.Errorf("trs: %d records declared, %d bytes of body: %w", count, len(raw)-4, ErrTruncated)
	}

	ts := make([]Transform[T], count)
	if count == 0 {
		return ts, nil
	}
	if err := binary.Read(bytes.NewReader(raw[4:4+count*size]), binary.LittleEndian, ts); err != nil {
		return nil, fmt.Errorf("trs: read records: %w", err)
	}
	return ts, nil
}

// Decode reads a whole binary buffer from r.
func Decode[T mathutil.Float](r io.Reader) ([]Transform[T], error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("trs: read: %w", err)
	}
	return Unmarshal[T](raw)
}

// ReadFile loads a binary TRS buffer from disk.
func ReadFile[T mathutil.Float](path string) ([]Transform[T], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trs: read %s: %w", path, err)
	}
	ts, err := Unmarshal[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// WriteFile stores ts on disk in the binary layout.
func WriteFile[T mathutil.Float](path string, ts []Transform[T]) error {
	raw, err := Marshal(ts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("trs: write %s: %w", path, err)
	}
	return nil
}
