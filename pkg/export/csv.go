package export

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// utf8BOM is prepended to CSV output so spreadsheet tools detect the
// encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the header and one record per row to w.
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return errors.WithStack(err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVColumns); err != nil {
		return errors.WithStack(err)
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return errors.WithStack(err)
		}
	}
	cw.Flush()

	return errors.WithStack(cw.Error())
}
