// Command trsdump prints the records of a binary TRS file and their matrices.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"trskit/internal/logging"
	"trskit/internal/mathutil"
	"trskit/internal/mglconv"
	"trskit/internal/trs"
)

func main() {
	double := flag.Bool("double", false, "Records hold float64 scalars")
	noMatrix := flag.Bool("no-matrix", false, "Skip printing the T·R·S matrix")
	gl := flag.Bool("gl", false, "Also print the matrix in column-major (OpenGL) order")
	flag.Parse()

	logger, err := logging.New("info")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: trsdump [-double] [-no-matrix] [-gl] file.trs")
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *double {
		err = dump[float64](os.Stdout, path, options{matrix: !*noMatrix, gl: *gl})
	} else {
		err = dump[float32](os.Stdout, path, options{matrix: !*noMatrix, gl: *gl})
	}
	if err != nil {
		logger.Error("dump failed", zap.String("file", path), zap.Error(err))
		os.Exit(1)
	}
}

type options struct {
	matrix bool
	gl     bool
}

func dump[T mathutil.Float](w io.Writer, path string, opts options) error {
	records, err := trs.ReadFile[T](path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d records of %d bytes\n", path, len(records), trs.RecordSize[T]())
	for i, x := range records {
		fmt.Fprintf(w, "%d: %v\n", i, x)
		if opts.matrix {
			fmt.Fprintf(w, "   %v\n", x.Matrix())
		}
		if opts.gl {
			m := mglconv.DTrsMat4(x.Float64())
			fmt.Fprintf(w, "   gl %s\n", mathutil.FormatTuple(m[:]))
		}
	}
	return nil
}
