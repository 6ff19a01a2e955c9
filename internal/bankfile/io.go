package bankfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

// Export writes the repository to w as an indented JSON document.
func Export(w io.Writer, repo *bank.Repository, name string, createdAt time.Time) error {
	f := FromRepository(repo, name, createdAt)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	return nil
}

// Import reads a JSON document from r, validates it against the bank
// schema, and rebuilds the repository. Malformed documents fail with an
// error wrapping ErrInvalidBank.
func Import(r io.Reader) (*bank.Repository, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	schema, err := compileBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidBank, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}
	return f.Repository()
}

// ExportFile writes the repository to the file at path.
func ExportFile(path string, repo *bank.Repository, name string, createdAt time.Time) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer fh.Close()

	if err := Export(fh, repo, name, createdAt); err != nil {
		return err
	}
	return fh.Close()
}

// ImportFile reads a repository from the file at path.
func ImportFile(path string) (*bank.Repository, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()
	return Import(fh)
}
