package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eteq/halotools/empirical/factory"
	"github.com/eteq/halotools/internal/cli/ui"
)

var inspectRedshift float64

var inspectCmd = &cobra.Command{
	Use:   "inspect <nickname>",
	Short: "Show the composition of a prebuilt model",
	Long: `Build the named prebuilt composite model and display its feature
sequence, calling sequence, output schema, parameters, halo-property
dependencies and publications.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		nickname := args[0]

		model, err := factory.NewPrebuilt(nickname,
			factory.Keywords{"redshift": inspectRedshift})
		if err != nil {
			if errors.Is(err, factory.ErrUnknownPrebuilt) {
				suggestions := ui.FindSimilar(nickname, factory.PrebuiltNames())
				fmt.Fprint(os.Stderr, ui.ModelNotFoundError(nickname, suggestions, noColor))
				os.Exit(1)
			}
			fmt.Fprint(os.Stderr, ui.CompositionError(err.Error(), nil, noColor))
			os.Exit(1)
		}

		renderModel(os.Stdout, nickname, model, noColor)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Float64Var(&inspectRedshift, "redshift", 0,
		"redshift to build the model at")
}

func renderModel(w io.Writer, nickname string, model *factory.CompositeModel, noColor bool) {
	ui.Header(w, "Composite model: "+nickname, noColor)
	fmt.Fprintln(w)

	kv := ui.NewKeyValueTable(w, noColor)
	kv.AddRow("Redshift", strconv.FormatFloat(model.Redshift(), 'g', -1, 64))
	kv.AddRow("Features", strings.Join(model.FeatureSequence(), ", "))
	if deps := model.HalopropList(); len(deps) > 0 {
		kv.AddRow("Halo properties", strings.Join(deps, ", "))
	}
	if pubs := model.Publications(); len(pubs) > 0 {
		kv.AddRow("Publications", strings.Join(pubs, ", "))
	}
	kv.Render()
	fmt.Fprintln(w)

	seq := ui.NewSection(w, "Calling sequence", noColor)
	for _, method := range model.CallingSequence() {
		seq.AddLine(method)
	}
	seq.Render()

	params := model.Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	paramSection := ui.NewSection(w, "Parameters", noColor)
	for _, name := range names {
		paramSection.AddLine(fmt.Sprintf("%s = %g", name, params[name]))
	}
	paramSection.Render()

	schema := ui.NewTable(w, []string{"Column", "Dtype"}, noColor)
	for _, col := range model.GalpropDtypes() {
		schema.AddRow(col.Name, col.Type.Name())
	}
	schema.Render()
}
