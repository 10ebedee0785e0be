package cli

import (
	"github.com/spf13/cobra"
)

// NewSpeciesCmd создаёт группу команд для каталога видов.
func NewSpeciesCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "species",
		Short: "Browse the species catalogue",
	}

	cmd.AddCommand(
		newSpeciesListCmd(clientFn, outputFn),
		newSpeciesSummaryCmd(clientFn, outputFn),
	)

	return cmd
}

func newSpeciesListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List distinct species labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			species, err := client.ListSpecies()
			if err != nil {
				return err
			}

			rows := make([][]string, len(species))
			for i, s := range species {
				rows[i] = []string{s}
			}

			out.Print([]string{"SPECIES"}, rows, species)
			return nil
		},
	}
}

func newSpeciesSummaryCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <name>",
		Short: "Per-species summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			summary, err := client.GetSpeciesSummary(args[0])
			if err != nil {
				return err
			}

			out.Print(measurementHeaders, measurementRows(summary.Measurements), summary)
			return nil
		},
	}
}
