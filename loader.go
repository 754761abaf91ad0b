package geogen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/geo/r2"
)

// fieldCount is the number of columns in a data row.
const fieldCount = 5

// LoadRecords reads a file written by SaveToFile.
func LoadRecords(path string) ([]Record, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening file %s: %w", ErrIO, path, err)
	}
	defer fi.Close()

	records, err := ReadRecords(fi)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return records, nil
}

// ReadRecords parses "id,unique_id,x,y,name" rows until EOF.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldCount
	cr.ReuseRecord = true

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			return nil, fmt.Errorf("%w: reading: %w", ErrIO, err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidArgument, line, err)
		}
		records = append(records, rec)
	}
}

func parseRow(row []string) (Record, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return Record{}, fmt.Errorf("parsing id: %w", err)
	}
	uid, err := strconv.Atoi(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("parsing unique_id: %w", err)
	}
	x, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return Record{}, fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("parsing y: %w", err)
	}
	return Record{
		ID:       id,
		UniqueID: uid,
		NamedPoint: NamedPoint{
			Point: r2.Point{X: x, Y: y},
			Name:  row[4],
		},
	}, nil
}
