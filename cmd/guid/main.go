// Command guid is a thin command-line front end over the guid library:
// it generates random GUIDs, validates and decomposes canonical strings,
// and canonicalizes the compact 32 character hex form.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lab2439/guid"
)

func main() {
	root := &cobra.Command{
		Use:           "guid",
		Short:         "Generate, parse and format 128-bit GUIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCmd(), parseCmd(), fmtCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "guid:", err)
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate random GUIDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < count; i++ {
				g, err := guid.New()
				if err != nil {
					return err
				}
				fmt.Println(g)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of GUIDs to generate")
	return cmd
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <guid>",
		Short: "Validate a canonical GUID string and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := guid.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("canonical: %s\n", g)
			fmt.Printf("data1:     0x%08X\n", g.Data1())
			fmt.Printf("data2:     0x%04X\n", g.Data2())
			fmt.Printf("data3:     0x%04X\n", g.Data3())
			fmt.Printf("data4:     % X\n", g.Data4())
			fmt.Printf("hex:       %s\n", g.EncodeToHex())
			fmt.Printf("base64:    %s\n", g.EncodeToBase64())
			return nil
		},
	}
}

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <hex32>",
		Short: "Canonicalize a compact 32 character hex GUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := guid.DecodeFromHex(args[0])
			if err != nil {
				return err
			}
			fmt.Println(g)
			return nil
		},
	}
}
