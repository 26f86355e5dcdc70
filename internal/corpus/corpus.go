// Package corpus reads and writes recommendation exports as JSON.
//
// Input is either one JSON array of objects or JSON Lines, one object per
// line. Output is always an indented JSON array.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cognicore/uhri/pkg/uhri/internalerr"
	"github.com/cognicore/uhri/pkg/uhri/record"
)

// YearField is the key the derived year is written under.
const YearField = "Year"

// maxLine bounds one JSONL line; recommendation texts can be long.
const maxLine = 16 << 20

// Read decodes raw records from r. Malformed JSONL lines are skipped with a
// warning; a malformed JSON array is an error.
func Read(r io.Reader, logger *slog.Logger) ([]record.RawRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if first == '[' {
		var raws []record.RawRecord
		if err := json.NewDecoder(br).Decode(&raws); err != nil {
			return nil, fmt.Errorf("%w: decode json array: %v", internalerr.ErrInvalidInput, err)
		}
		return raws, nil
	}

	var raws []record.RawRecord
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		var raw record.RawRecord
		if err := json.Unmarshal(text, &raw); err != nil {
			logger.Warn("skipping malformed line", "line", line, "error", err)
			continue
		}
		raws = append(raws, raw)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan jsonl: %w", err)
	}
	return raws, nil
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// peekNonSpace skips a byte-order mark and leading whitespace and returns
// the next byte without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	if head, _ := br.Peek(len(bom)); bytes.Equal(head, bom) {
		if _, err := br.Discard(len(bom)); err != nil {
			return 0, err
		}
	}
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// Load reads raw records from the file at path.
func Load(path string, logger *slog.Logger) ([]record.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	raws, err := Read(f, logger)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return raws, nil
}

// Export turns a record back into an export object under fields. Absent
// dates and years are written as null; themes are joined with newlines.
// Passthrough values of an unexpected type are written back as they came.
func Export(r record.Record, fields record.Fields) record.RawRecord {
	out := make(record.RawRecord, len(r.Extra)+5)
	for k, v := range r.Extra {
		out[k] = v
	}
	set := func(k string, v any) {
		if _, kept := r.Extra[k]; !kept {
			out[k] = v
		}
	}
	set(fields.Text, r.Text)
	set(fields.Body, r.RecommendingBody)
	set(fields.Themes, strings.Join(r.Themes, "\n"))
	if r.PublicationDate != "" {
		out[fields.Date] = r.PublicationDate
	} else if _, kept := r.Extra[fields.Date]; !kept {
		out[fields.Date] = nil
	}
	if r.HasYear() {
		out[YearField] = r.Year
	} else {
		out[YearField] = nil
	}
	return out
}

// Write encodes records to w as an indented JSON array.
func Write(w io.Writer, records []record.Record, fields record.Fields) error {
	out := make([]record.RawRecord, len(records))
	for i, r := range records {
		out[i] = Export(r, fields)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	return nil
}

// Save writes records to the file at path, replacing it.
func Save(path string, records []record.Record, fields record.Fields) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus %s: %w", path, err)
	}
	if err := Write(f, records, fields); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
