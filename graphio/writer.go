package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDistances writes one distance per line, in vertex-id order,
// matching the reference implementation's write_answer output so that
// ReadDistances round-trips it exactly.
func WriteDistances(w io.Writer, dist []int64) error {
	bw := bufio.NewWriter(w)
	for _, d := range dist {
		if _, err := bw.WriteString(strconv.FormatInt(d, 10)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadDistances reads a distance vector previously written by
// WriteDistances.
func ReadDistances(r io.Reader) ([]int64, error) {
	sc := bufio.NewScanner(r)

	var dist []int64
	for sc.Scan() {
		d, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		dist = append(dist, d)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return dist, nil
}
