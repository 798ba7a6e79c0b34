package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/sqlvec/vector"
)

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <literal>",
		Short: "Encode a vector literal like '[1,2,3]' as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := typeFlag(cmd)
			if err != nil {
				return err
			}
			vec, err := vector.ParseText(args[0], typ)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(vec.EncodeBinary()))
			return err
		},
	}
	cmd.Flags().String("type", "float32", "Element type: float32 or float64")
	return cmd
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <hex|literal>",
		Short: "Print the canonical text form of a hex BLOB or literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			op, err := operand(args[0], strict)
			if err != nil {
				return err
			}
			vec, err := op.Resolve(vector.TypeFloat32)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), vector.ExtractText(vec))
			return err
		},
	}
	cmd.Flags().Bool("strict", false, "Require a type trailer on BLOB input")
	return cmd
}

func distanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Compute the distance between two vectors (hex BLOBs or literals)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := typeFlag(cmd)
			if err != nil {
				return err
			}
			metric, _ := cmd.Flags().GetString("metric")
			x, err := operand(args[0], false)
			if err != nil {
				return err
			}
			y, err := operand(args[1], false)
			if err != nil {
				return err
			}
			a, b, err := vector.ResolvePair(x, y, typ)
			if err != nil {
				return err
			}
			d, err := vector.Distance(vector.Metric(metric), a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(d, 'g', 15, 64))
			return err
		},
	}
	cmd.Flags().String("type", "float32", "Element type when both operands are literals: float32 or float64")
	cmd.Flags().String("metric", string(vector.MetricCosine), "Distance metric: cos or l2")
	return cmd
}

func typeFlag(cmd *cobra.Command) (vector.Type, error) {
	name, _ := cmd.Flags().GetString("type")
	return vector.ParseType(name)
}

// operand reads a literal when the argument starts with '[', otherwise a hex
// encoded BLOB.
func operand(arg string, strict bool) (vector.Operand, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "[") {
		return vector.TextOperand(arg), nil
	}
	data, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return vector.Operand{}, fmt.Errorf("invalid hex %q: %w", arg, err)
	}
	var opts []vector.DecodeOption
	if strict {
		opts = append(opts, vector.WithStrictTrailer())
	}
	vec, err := vector.DecodeBinary(data, opts...)
	if err != nil {
		return vector.Operand{}, err
	}
	return vector.VectorOperand(vec), nil
}
