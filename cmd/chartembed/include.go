package main

import (
	"github.com/spf13/cobra"

	"github.com/avercin/chartembed/chart"
	"github.com/avercin/chartembed/utils"
)

var includeSrc string

func newIncludeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "include",
		Short: "Print the charting library's script include tag",
		Long: "Prints the <script src> tag that loads the charting library. Pages gate\n" +
			"this on a front-matter flag so chartless pages skip the dependency.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts := loadOptions()
			if includeSrc != "" {
				opts.ScriptSrc = includeSrc
			}
			utils.User("%s", chart.New(opts).ScriptInclude())
		},
	}
	cmd.Flags().StringVar(&includeSrc, "src", "", "override the charting library URL")
	return cmd
}
