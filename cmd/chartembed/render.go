package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avercin/chartembed/chart"
	"github.com/avercin/chartembed/utils"
)

var (
	renderClass    string
	renderGlobal   string
	renderIDPrefix string
	renderIDLength int
	renderUUIDs    bool
	renderOut      string
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart fragment from a configuration block",
		Long: "Reads one chart-configuration block from FILE (or stdin when omitted or '-')\n" +
			"and prints the HTML fragment that embeds it.",
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
	cmd.Flags().StringVar(&renderClass, "class", "", "container class attribute ('-' to omit)")
	cmd.Flags().StringVar(&renderGlobal, "global", "", "client-side chart constructor global")
	cmd.Flags().StringVar(&renderIDPrefix, "id-prefix", "", "anchor id prefix")
	cmd.Flags().IntVar(&renderIDLength, "id-length", 0, "anchor id token length")
	cmd.Flags().BoolVar(&renderUUIDs, "uuid-ids", false, "use uuid anchor ids instead of random tokens")
	cmd.Flags().StringVarP(&renderOut, "out", "o", "", "write the fragment to a file instead of stdout")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	content, err := readContent(args)
	if err != nil {
		return utils.Errorf("read chart config: %w", err)
	}

	opts := loadOptions()
	if renderClass != "" {
		opts.Class = renderClass
	}
	if renderGlobal != "" {
		opts.Global = renderGlobal
	}
	if renderIDPrefix != "" {
		opts.IDPrefix = renderIDPrefix
	}
	if renderIDLength > 0 {
		opts.IDLength = renderIDLength
	}
	if renderUUIDs {
		opts.IDs = chart.UUIDSource{Prefix: opts.IDPrefix}
	}

	fragment := chart.New(opts).Render(content)
	utils.Debug("rendered %d-byte fragment from %d bytes of config", len(fragment), len(content))

	if renderOut != "" {
		if err := os.WriteFile(renderOut, []byte(fragment), 0o644); err != nil {
			return utils.Errorf("write fragment: %w", err)
		}
		return nil
	}
	utils.User("%s", fragment)
	return nil
}

func readContent(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		return string(b), err
	}
	b, err := io.ReadAll(os.Stdin)
	return string(b), err
}
