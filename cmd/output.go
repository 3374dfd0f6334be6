package cmd

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// writeCSV marshals records to the named file, or to w when the name is
// empty or "-".
func writeCSV(w io.Writer, outFile string, records interface{}) (err error) {
	if len(outFile) == 0 || outFile == "-" {
		return gocsv.Marshal(records, w)
	}
	var fh *os.File
	if fh, err = os.Create(outFile); err != nil {
		return
	}
	if err = gocsv.Marshal(records, fh); err != nil {
		_ = fh.Close()
		return
	}
	return fh.Close()
}
