package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewFlowerCmd создаёт группу команд для работы с записями датасета.
func NewFlowerCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flower",
		Short: "Query flower records",
	}

	cmd.AddCommand(
		newFlowerListCmd(clientFn, outputFn),
		newFlowerShowCmd(clientFn, outputFn),
	)

	return cmd
}

// addFilterFlags навешивает общие флаги фильтра на команду.
func addFilterFlags(cmd *cobra.Command, opts *FilterOpts) {
	cmd.Flags().StringVar(&opts.Species, "species", "", "Exact species match")
	cmd.Flags().StringArrayVar(&opts.Min, "min", nil, "Lower bound, attr=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Max, "max", nil, "Upper bound, attr=value (repeatable)")
}

func newFlowerListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var opts ListFlowersOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flower records matching the filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			flowers, err := client.ListFlowers(opts)
			if err != nil {
				return err
			}

			headers := []string{"ID", "SEPAL_L", "SEPAL_W", "PETAL_L", "PETAL_W", "SPECIES"}
			rows := make([][]string, len(flowers))
			for i, f := range flowers {
				rows[i] = []string{
					strconv.Itoa(f.ID),
					formatFloat(f.SepalLength),
					formatFloat(f.SepalWidth),
					formatFloat(f.PetalLength),
					formatFloat(f.PetalWidth),
					f.Species,
				}
			}

			out.Print(headers, rows, flowers)
			return nil
		},
	}

	addFilterFlags(cmd, &opts.FilterOpts)
	cmd.Flags().StringVar(&opts.SortBy, "sort-by", "", "Sort field (attribute or species)")
	cmd.Flags().StringVar(&opts.SortOrder, "sort-order", "", "Sort order: asc or desc")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of records")

	return cmd
}

func newFlowerShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single flower record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			flower, err := client.GetFlower(args[0])
			if err != nil {
				return err
			}

			out.JSON(flower)
			return nil
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
