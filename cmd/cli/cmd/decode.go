package cmd

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/arch/x86/decoder"
	"github.com/keurnel/x64dis/format/att"
	"github.com/keurnel/x64dis/format/intel"
)

var (
	decodeModeFlag   string
	decodeSyntaxFlag string
	decodeLimitFlag  int
	decodeHexFlag    bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode a stream of x86/x86-64 machine code into instructions",
	Long:    `Decode reads raw machine code (or, with --hex, a hex-text dump) from a file and prints one disassembled instruction per line.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDecode(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeModeFlag, "mode", "m", "long", "execution mode: legacy, compat, or long")
	decodeCmd.Flags().StringVarP(&decodeSyntaxFlag, "syntax", "s", "intel", "output syntax: intel or att")
	decodeCmd.Flags().IntVarP(&decodeLimitFlag, "count", "n", 0, "number of input bytes to decode (0 = the whole input)")
	decodeCmd.Flags().BoolVar(&decodeHexFlag, "hex", false, "treat the input file as whitespace-separated hex text instead of raw bytes")
}

func runDecode(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(decodeModeFlag)
	if err != nil {
		return err
	}

	buf, err := readDecodeInput(args[0])
	if err != nil {
		return err
	}

	if decodeLimitFlag > 0 && decodeLimitFlag < len(buf) {
		buf = buf[:decodeLimitFlag]
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	c := decoder.NewCursor(buf)
	var ip uint64
	for c.Remaining() > 0 {
		start := c.Position()
		inst := decoder.Read(c, mode, decoder.WithLogger(log))

		cmd.Println(renderInstruction(inst, ip, buf[start:start+inst.Length]))

		ip += uint64(inst.Length)

		if !inst.IsValid() && inst.Length == 0 {
			// A zero-length invalid instruction would spin forever; force
			// progress past the offending byte.
			c.Pop()
		}
	}
	return nil
}

func renderInstruction(inst x86.Instruction, ip uint64, raw []byte) string {
	var text string
	switch decodeSyntaxFlag {
	case "att":
		text = att.Format(inst, ip)
	default:
		text = intel.Format(inst, ip)
	}
	return hex.EncodeToString(raw) + "\t" + text
}

func parseMode(s string) (x86.Mode, error) {
	switch strings.ToLower(s) {
	case "legacy":
		return x86.Legacy, nil
	case "compat":
		return x86.Compat, nil
	case "long":
		return x86.Long, nil
	default:
		return 0, errors.Errorf("unknown execution mode %q (want legacy, compat, or long)", s)
	}
}

func readDecodeInput(path string) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("input file does not exist at path: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input file")
	}

	if !decodeHexFlag {
		return raw, nil
	}

	text := strings.Join(strings.Fields(string(raw)), "")
	buf, err := hex.DecodeString(text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse hex input")
	}
	return buf, nil
}
