package cli

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/KasperOmsK/seqfn"
	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRangeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "range START COUNT",
		Short: "Print COUNT consecutive integers starting at START",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseInt(args[0])
			if err != nil {
				return err
			}
			count, err := parseInt(args[1])
			if err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("count %d: %w", count, seqfn.ErrOutOfRange)
			}

			opts.logger.Debug("generating range", "start", start, "count", count)
			return writeValues(cmd.OutOrStdout(), seqfn.Range(start, count))
		},
	}
}

type intFilter struct {
	gt, lt    int
	even, odd bool
}

func (f intFilter) predicate(flags *pflag.FlagSet) seqfn.Predicate[int] {
	var conds []seqfn.Predicate[int]
	if flags.Changed("gt") {
		conds = append(conds, func(v int) bool { return v > f.gt })
	}
	if flags.Changed("lt") {
		conds = append(conds, func(v int) bool { return v < f.lt })
	}
	if f.even {
		conds = append(conds, func(v int) bool { return v%2 == 0 })
	}
	if f.odd {
		conds = append(conds, func(v int) bool { return v%2 != 0 })
	}

	return func(v int) bool {
		return seqfn.All(slices.Values(conds), func(c seqfn.Predicate[int]) bool { return c(v) })
	}
}

func newWhereCommand(opts *options) *cobra.Command {
	var f intFilter

	cmd := &cobra.Command{
		Use:   "where",
		Short: "Print the input integers matching every given condition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInts(cmd.InOrStdin(), opts.logger)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), seqfn.Where(src, f.predicate(cmd.Flags())))
		},
	}
	cmd.Flags().IntVar(&f.gt, "gt", 0, "keep values greater than this")
	cmd.Flags().IntVar(&f.lt, "lt", 0, "keep values less than this")
	cmd.Flags().BoolVar(&f.even, "even", false, "keep even values")
	cmd.Flags().BoolVar(&f.odd, "odd", false, "keep odd values")
	cmd.MarkFlagsMutuallyExclusive("even", "odd")
	return cmd
}

func newSelectCommand(opts *options) *cobra.Command {
	var mul, add int

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Print every input integer multiplied by --mul plus --add",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInts(cmd.InOrStdin(), opts.logger)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), seqfn.Select(src, func(v int) int { return v*mul + add }))
		},
	}
	cmd.Flags().IntVar(&mul, "mul", 1, "multiplier")
	cmd.Flags().IntVar(&add, "add", 0, "offset added after multiplying")
	return cmd
}

// parseKey resolves a key expression of the order command.
func parseKey(expr string) (seqfn.KeyFunc[int, int], error) {
	name, arg, hasArg := strings.Cut(expr, ":")

	switch name {
	case "id":
		return func(v int) int { return v }, nil
	case "neg":
		return func(v int) int { return -v }, nil
	case "abs":
		return func(v int) int { return absInt(v) }, nil
	case "mod", "sub":
		if !hasArg {
			return nil, fmt.Errorf("key %q needs an argument, e.g. %s:10", expr, name)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("key %q: invalid argument %q", expr, arg)
		}
		if name == "sub" {
			return func(v int) int { return v - n }, nil
		}
		if n == 0 {
			return nil, fmt.Errorf("key %q: modulus can't be zero", expr)
		}
		return func(v int) int { return v % n }, nil
	default:
		return nil, fmt.Errorf("unknown key %q (want id, neg, abs, mod:N or sub:N)", expr)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func compareAbs(a, b int) int {
	return cmp.Compare(absInt(a), absInt(b))
}

func newOrderCommand(opts *options) *cobra.Command {
	var (
		keyExpr string
		byAbs   bool
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the input integers in ascending order of a key",
		Long: `Print the input integers in ascending order of a key. Integers with
equal keys keep their input order.

Keys: id, neg, abs, mod:N (remainder of division by N), sub:N (value minus N).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(keyExpr)
			if err != nil {
				return err
			}
			src, err := readInts(cmd.InOrStdin(), opts.logger)
			if err != nil {
				return err
			}

			// nil selects the natural ordering of the keys.
			var comparer seqfn.Comparer[int]
			if byAbs {
				comparer = compareAbs
			}
			return writeValues(cmd.OutOrStdout(), seqfn.OrderByFunc(src, key, comparer))
		},
	}
	cmd.Flags().StringVar(&keyExpr, "key", "id", "key expression")
	cmd.Flags().BoolVar(&byAbs, "abs", false, "compare keys by absolute value")
	return cmd
}

func newReverseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse",
		Short: "Print the input integers in reverse order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInts(cmd.InOrStdin(), opts.logger)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), seqfn.Reverse(src))
		},
	}
}

func newCountCommand(opts *options) *cobra.Command {
	var (
		gt    int
		human bool
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of input integers, optionally only those above --gt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInts(cmd.InOrStdin(), opts.logger)
			if err != nil {
				return err
			}

			var n int
			if cmd.Flags().Changed("gt") {
				n = seqfn.CountFunc(src, func(v int) bool { return v > gt })
			} else {
				n = seqfn.Count(src)
			}

			out := strconv.Itoa(n)
			if human {
				out = humanize.Comma(int64(n))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&gt, "gt", 0, "only count values greater than this")
	cmd.Flags().BoolVar(&human, "human", false, "group digits with commas")
	return cmd
}

func newAllCommand(opts *options) *cobra.Command {
	var gt int

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Print whether every input integer is greater than --gt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInts(cmd.InOrStdin(), opts.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seqfn.All(src, func(v int) bool { return v > gt }))
			return err
		},
	}
	cmd.Flags().IntVar(&gt, "gt", 0, "lower bound (exclusive)")
	cobra.CheckErr(cmd.MarkFlagRequired("gt"))
	return cmd
}

func newTypesCommand(opts *options) *cobra.Command {
	var (
		typ    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "types",
		Short: "Print the input values of one type",
		Long: `Print the input values of one type. Every token is read as an int, a
float, a bool or a string, in that order of preference.

Values of other types are skipped, unless --strict is set, in which case
the first one is reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := scanTokens(cmd.InOrStdin())
			if err != nil {
				return err
			}

			list := arraylist.New()
			for _, tok := range toks {
				list.Add(parseValue(tok))
			}
			opts.logger.Debug("parsed heterogeneous input", "values", list.Size())

			src := seqfn.Trace(seqfn.FromContainer(list), opts.logger, "input")
			out := cmd.OutOrStdout()
			switch typ {
			case "int":
				return writeTyped[int](out, src, strict)
			case "float":
				return writeTyped[float64](out, src, strict)
			case "bool":
				return writeTyped[bool](out, src, strict)
			case "string":
				return writeTyped[string](out, src, strict)
			default:
				return fmt.Errorf("unknown type %q (want int, float, bool or string)", typ)
			}
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "int, float, bool or string")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first value of another type")
	cobra.CheckErr(cmd.MarkFlagRequired("type"))
	return cmd
}

func writeTyped[R any](w io.Writer, src iter.Seq[any], strict bool) error {
	if !strict {
		return writeValues(w, seqfn.OfType[R](src))
	}

	for v, err := range seqfn.TryCast[R](src) {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
