package shop

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrInvalidDocument reports an import payload that does not pass the
// structural shape check. The wrapping error carries the reason.
var ErrInvalidDocument = errors.New("invalid book document")

// This file contains functions to handle the import/export format. It must
// remain human readable, a single file, and round-trip losslessly.

// ExportBook writes the canonical, indented JSON encoding of the book.
func ExportBook(w io.Writer, b Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.Sanitized()); err != nil {
		return fmt.Errorf("cannot write book document: %w", err)
	}
	return nil
}

// ImportBook parses a whole book document. The shape check is minimal on
// purpose: inventory, sales and purchases must be present as keys, and the
// migrator heals entry-level details afterwards. On failure the returned
// error wraps ErrInvalidDocument and no state has been touched; replacing
// the working book with the result is the caller's decision, taken only
// after explicit confirmation.
func ImportBook(r io.Reader) (Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Book{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Book{}, fmt.Errorf("%w: cannot parse: %w", ErrInvalidDocument, err)
	}
	for _, key := range []string{"inventory", "sales", "purchases"} {
		if _, ok := doc[key]; !ok {
			return Book{}, fmt.Errorf("%w: missing %q", ErrInvalidDocument, key)
		}
	}
	book, _ := Migrate(data)
	return book, nil
}

// ExportFilename returns the default, date-embedded name for an export
// file.
func ExportFilename(t Timestamp) string {
	return fmt.Sprintf("halfhalf-backup-%s.json", t.Short())
}
