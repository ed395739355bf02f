package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/harlequix/hamming/internal/format"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <binary>",
	Short: "Encode one byte into two codewords",
	Long: `Encode splits the byte into its high and low nibble and prints the
Hamming(7,4) codeword of each, high first. Only the low eight bits of the
literal are used.`,
	Args: cobra.ExactArgs(1),
	RunE: encode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	data, err := encoding.ParseBinary(args[0])
	if err != nil {
		return err
	}
	high, low := encoding.EncodeByte(data)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Encoded: %s %s\n", encoding.FormatBinary8(high), encoding.FormatBinary8(low))
	if verbose() {
		for _, cw := range []byte{high, low} {
			fmt.Fprint(out, format.Annotate(cw, encoding.Decode(cw)))
		}
	}
	return nil
}
