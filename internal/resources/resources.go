//Package resources gives access to the reference tables compiled into the library
package resources

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

//go:embed data
var dataFS embed.FS

//ReadCloser is an io.Reader with a Close method that cannot fail, which is
//what the zstd decoder provides
type ReadCloser interface {
	io.Reader
	Close()
}

type bytesReadCloser struct {
	*bytes.Reader
}

func (bytesReadCloser) Close() {}

//Open returns a reader for the named table. Tables with the .zst extension
//are decompressed transparently.
func Open(name string) (ReadCloser, error) {
	b, err := dataFS.ReadFile(path.Join("data", name))
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	br := bytesReadCloser{bytes.NewReader(b)}

	if path.Ext(name) == ".zst" {
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, fmt.Errorf("resources: %s: %w", name, err)
		}
		return zr, nil
	}
	return br, nil
}

//Names returns the names of all bundled tables
func Names() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

//MungeCSV reads the named CSV table and calls callback for each record
//with the values of the requested fields, in the order of fields.
//
//Lines starting with # are comments. The slice passed to the callback
//is reused between the calls.
func MungeCSV(name string, fields []string, callback func([]string) error) error {
	r, err := Open(name)
	if err != nil {
		return err
	}
	defer r.Close()

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.ReuseRecord = true

	// Find the index of each field the caller requested
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("%s: error parsing CSV file: %w", name, err)
	}
	var fieldIndices []int
	for fi, f := range fields {
		for hi, h := range header {
			if f == strings.TrimSpace(h) {
				fieldIndices = append(fieldIndices, hi)
				break
			}
		}
		if len(fieldIndices) != fi+1 {
			return fmt.Errorf("%s: did not find requested field header %q", name, f)
		}
	}

	var strs []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("%s: error parsing CSV file: %w", name, err)
		}
		for _, i := range fieldIndices {
			strs = append(strs, strings.TrimSpace(record[i]))
		}
		if err := callback(strs); err != nil {
			line, _ := cr.FieldPos(0)
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
		strs = strs[:0]
	}
}

//DecodeJSON decodes the named JSON table into v
func DecodeJSON(name string, v any) error {
	r, err := Open(name)
	if err != nil {
		return err
	}
	defer r.Close()

	d := json.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

//DecodeMsgpack decodes the named msgpack table into v
func DecodeMsgpack(name string, v any) error {
	r, err := Open(name)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := msgpack.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
