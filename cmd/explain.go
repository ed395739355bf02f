package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/harlequix/hamming/internal/format"
)

var explainCmd = &cobra.Command{
	Use:   "explain <binary>",
	Short: "Show how a single codeword is decoded",
	Args:  cobra.ExactArgs(1),
	RunE:  explain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func explain(cmd *cobra.Command, args []string) error {
	cw, err := encoding.ParseBinary(args[0])
	if err != nil {
		return err
	}
	res := encoding.Decode(cw)
	block := format.FromResult(cw, res)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n%s\n", block.Header(), block.String())
	fmt.Fprintf(out, "syndrome: %03b\nstatus:   %s\nvalue:    %04b\n", res.Syndrome, res.Status, res.Value)
	return nil
}
