package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/harlequix/hamming/internal/format"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <binary> [binary]",
	Short: "Decode codewords into a byte",
	Long: `Decode takes the high and the low codeword and prints the byte they
carry. With a single codeword the high one is taken as zero and the result is
a nibble.

A single flipped bit per codeword is corrected. Two or more flipped bits are
not detected and give a wrong result.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: decode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	codewords := make([]byte, len(args))
	for i, arg := range args {
		cw, err := encoding.ParseBinary(arg)
		if err != nil {
			return err
		}
		codewords[i] = cw
	}

	var value byte
	if len(codewords) == 1 {
		value = encoding.DecodeSingle(codewords[0])
	} else {
		value = encoding.DecodeByte(codewords[0], codewords[1])
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Decoded:")
	fmt.Fprintln(out, encoding.FormatBinary8(value))
	if verbose() {
		for _, cw := range codewords {
			fmt.Fprint(out, format.Annotate(cw, encoding.Decode(cw)))
		}
	}
	return nil
}

func verbose() bool {
	return viper.GetBool("Verbose")
}
