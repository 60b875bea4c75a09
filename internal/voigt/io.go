package voigt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"anisofit/internal/mathutil"
)

var (
	// ErrShortInput is returned when the input ends before 36 numbers were read.
	ErrShortInput = errors.New("voigt: fewer than 36 numbers in input")

	// ErrBadNumber is returned for a token that does not parse as a number.
	ErrBadNumber = errors.New("voigt: not a number")
)

// DefaultFormat is the layout used to print stiffness matrices.
const DefaultFormat = "%11.4g "

// Read parses 36 whitespace-separated numbers, row by row, into a matrix.
// Anything after the 36th number is left unread.
func Read(r io.Reader) (Matrix, error) {
	var c Matrix

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	n := 0
	for n < len(c) && sc.Scan() {
		tok := sc.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Matrix{}, fmt.Errorf("%w: %q at row %d, column %d", ErrBadNumber, tok, n/6+1, n%6+1)
		}
		c[n] = v
		n++
	}
	if err := sc.Err(); err != nil {
		return Matrix{}, fmt.Errorf("voigt: read: %w", err)
	}
	if n < len(c) {
		return Matrix{}, fmt.Errorf("%w (got %d)", ErrShortInput, n)
	}
	return c, nil
}

// ReadFile reads a stiffness matrix from a text file.
func ReadFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("voigt: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Format writes c as six lines of six values, each printed with format.
// Values are narrowed to float32 first so that printed digits stay stable
// across platforms.
func Format(w io.Writer, format string, c Matrix) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			fmt.Fprintf(bw, format, float32(c[i*6+j]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// FormatMat3 writes a 3×3 matrix, one row per line.
func FormatMat3(w io.Writer, m mathutil.Mat3) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			fmt.Fprintf(bw, "%12.6g ", float32(m[i*3+j]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
