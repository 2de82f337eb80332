package main

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"m61-modulus/m61"
)

var bigOrder = new(big.Int).SetUint64(m61.Modulus - 1)

const reduceLong = `Print each integer modulo 2^61-1.

Integers may be decimal or carry a 0x, 0o or 0b prefix, and may have any
size. Put negative numbers after --, e.g. m61 reduce -- -42.`

func (a *app) reduceCmd() *cobra.Command {
	var hex bool
	cmd := &cobra.Command{
		Use:   "reduce <int>...",
		Short: "Print each integer modulo 2^61-1",
		Long:  reduceLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				x, err := parseInt(s)
				if err != nil {
					return err
				}
				r := m61.FromBig(x)
				a.log.Debug("reduced", zap.Int("bits", x.BitLen()), zap.Uint64("residue", r.Value()))
				if hex {
					fmt.Fprintf(cmd.OutOrStdout(), "%#x\n", r)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\n", r)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hex, "hex", false, "print residues in hexadecimal")
	return cmd
}

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow <base> <exp>",
		Short: "Print base^exp modulo 2^61-1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseInt(args[0])
			if err != nil {
				return err
			}
			exp, err := parseInt(args[1])
			if err != nil {
				return err
			}
			r, err := powBig(m61.FromBig(base), exp)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", r)
			return nil
		},
	}
}

// powBig raises b to an exponent of any size. Exponents that do not fit in
// a uint64 are reduced modulo 2^61-2 for non-zero b.
func powBig(b m61.M61, exp *big.Int) (m61.M61, error) {
	if exp.Sign() < 0 {
		return m61.Zero(), errors.Errorf("negative exponent %s", exp)
	}
	if exp.IsUint64() {
		return b.Pow(exp.Uint64()), nil
	}
	if b.IsZero() {
		return b, nil
	}
	return b.Pow(new(big.Int).Mod(exp, bigOrder).Uint64()), nil
}

func (a *app) invCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inv <int>",
		Short: "Print the multiplicative inverse modulo 2^61-1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt(args[0])
			if err != nil {
				return err
			}
			inv, err := m61.FromBig(x).Inverse()
			if err != nil {
				return errors.Wrapf(err, "inverse of %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", inv)
			return nil
		},
	}
}
