// Package main provides the vdebug command line interface.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdisneyleugers/vdebug/insts"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vdebug",
		Short: "vdebug — i386 disassembly tooling",
	}

	var (
		va       uint64
		offset   int
		count    int
		filePath string
	)

	disCmd := &cobra.Command{
		Use:   "dis [hexbytes]",
		Short: "Disassemble raw bytes (hex string argument or --file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := inputBytes(args, filePath)
			if err != nil {
				return err
			}
			if offset < 0 || offset > len(buf) {
				return fmt.Errorf("offset %d out of range for %d input bytes", offset, len(buf))
			}
			return disassemble(buf, offset, va, count)
		},
	}
	disCmd.Flags().Uint64Var(&va, "va", 0x1000, "virtual address of the first decoded byte")
	disCmd.Flags().IntVar(&offset, "offset", 0, "byte offset to start decoding at")
	disCmd.Flags().IntVar(&count, "count", 0, "maximum instructions to decode (0 = all)")
	disCmd.Flags().StringVar(&filePath, "file", "", "read input bytes from a file")

	rootCmd.AddCommand(disCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inputBytes(args []string, filePath string) ([]byte, error) {
	if filePath != "" {
		return os.ReadFile(filePath)
	}
	if len(args) == 0 {
		return nil, errors.New("give a hex byte string or --file")
	}
	clean := strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(strings.Join(args, ""))
	return hex.DecodeString(clean)
}

// disassemble runs a best-effort linear sweep: a byte sequence that
// fails to decode prints as a db directive and the sweep resumes one
// byte later.
func disassemble(buf []byte, offset int, va uint64, count int) error {
	d := insts.NewDisasm()
	start := offset

	for n := 0; offset < len(buf); n++ {
		if count > 0 && n >= count {
			break
		}
		cur := va + uint64(offset-start)

		op, err := d.Disasm(buf, offset, cur)
		if err != nil {
			var iie *insts.InvalidInstructionError
			if !errors.As(err, &iie) {
				return err
			}
			fmt.Printf("0x%.8x: %-21s db 0x%.2x\n", cur, fmt.Sprintf("% x", buf[offset:offset+1]), buf[offset])
			offset++
			continue
		}

		fmt.Printf("0x%.8x: %-21s %s\n", cur, fmt.Sprintf("% x", buf[offset:offset+op.Size]), op)
		offset += op.Size
	}

	return nil
}
