package cli

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"

	"github.com/KasperOmsK/seqfn"
)

func scanTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return out, nil
}

func parseInt(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", tok)
	}
	return v, nil
}

// readInts parses every token of r as an integer and returns them as a
// traced sequence.
func readInts(r io.Reader, logger *slog.Logger) (iter.Seq[int], error) {
	toks, err := scanTokens(r)
	if err != nil {
		return nil, err
	}

	ints, err := seqfn.TryCollect(seqfn.TrySelect(slices.Values(toks), parseInt))
	if err != nil {
		return nil, err
	}
	return seqfn.Trace(slices.Values(ints), logger, "input"), nil
}

// parseValue converts a token into an int, float64, bool or string, in that
// order of preference.
func parseValue(tok string) any {
	if v, err := strconv.Atoi(tok); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v
	}
	switch tok {
	case "true":
		return true
	case "false":
		return false
	}
	return tok
}

func writeValues[T any](w io.Writer, values iter.Seq[T]) error {
	for v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
