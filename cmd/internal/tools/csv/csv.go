package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nathanhack/ternaryecc/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var ParityError bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = writeCSV(f, args, tools.ErrorKindFor(MessageError, ParityError))
	if err != nil {
		fmt.Println(err)
	}
}

// writeCSV writes one row per results file and one column per error probability.
func writeCSV(out io.Writer, resultFiles []string, kind tools.ErrorKind) error {
	stats, percentagesList, err := tools.LoadAllResults(resultFiles)
	if err != nil {
		return err
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	//first write headers
	header := []string{"Results File"}
	for _, p := range percentagesList {
		header = append(header, strconv.FormatFloat(p, 'g', -1, 64))
	}

	err = w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(resultFiles[i], filepath.Ext(resultFiles[i]))

		for j, p := range percentagesList {
			v, has := s.Stats[p]
			if has {
				record[j+1] = strconv.FormatFloat(kind.Mean(v), 'g', -1, 64)
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	return nil
}
