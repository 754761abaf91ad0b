package geogen

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteRecords writes one "id,unique_id,x,y,name" line per record. Names
// are written verbatim; a name containing a comma corrupts the row.
func WriteRecords(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%d,%d,%v,%v,%s\n", r.ID, r.UniqueID, r.Point.X, r.Point.Y, r.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveToFile truncates path and writes records to it. The file is closed
// on every path; a failed write leaves whatever was written so far.
func SaveToFile(path string, records []Record) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating file %s: %w", ErrIO, path, err)
	}
	defer func() {
		// Explicitly check Close to catch flush errors (e.g., on NFS).
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing file %s: %w", ErrIO, path, cerr)
		}
	}()

	if err := WriteRecords(out, records); err != nil {
		return fmt.Errorf("%w: writing file %s: %w", ErrIO, path, err)
	}
	return nil
}
