package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eteq/halotools/empirical/factory"
	"github.com/eteq/halotools/internal/cli/ui"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available prebuilt composite models",
	Long: `List the nicknames of every registered prebuilt composite model.
Any nickname can be passed to 'halotools inspect' or 'halotools populate'.`,
	Run: func(cmd *cobra.Command, args []string) {
		renderModels(os.Stdout, factory.PrebuiltNames(), noColor)
	},
}

func renderModels(w io.Writer, nicknames []string, noColor bool) {
	ui.Header(w, "Prebuilt composite models", noColor)

	list := ui.NewList(w, false, noColor)
	for _, name := range nicknames {
		list.AddItem(name)
	}
	list.Render()
}
