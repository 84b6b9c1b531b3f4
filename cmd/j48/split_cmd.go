package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lordrook/J48/dataset"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      string
	splitOutputTable string
	trainFraction    float64
	seed             int64
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into a training set, dumped on the output, and a test set, dumped on the split output`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			attrs, err := readMetadata(config.logger, config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ds, err := readDataset(config.Context(), config.logger, config.setInput, config.inputTable, attrs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading input set: %v\n", err)
				os.Exit(3)
			}
			if config.seed == 0 {
				config.seed = time.Now().UnixNano()
			}
			config.Logf("Splitting input set with seed %d...", config.seed)
			train, test, err := dataset.Split(ds, config.trainFraction, rand.New(rand.NewSource(config.seed)))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			err = writeDataset(config.Context(), config.logger, config.setOutput, config.outputTable, train)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing output set: %v\n", err)
				os.Exit(5)
			}
			err = writeDataset(config.Context(), config.logger, config.splitOutput, config.splitOutputTable, test)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing split set: %v\n", err)
				os.Exit(6)
			}
			config.Logf("Done")
			config.Logf("Input set with %d records was split into sets with %d and %d records", ds.Len(), train.Len(), test.Len())
		},
	}
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path or URL to "+datasetLocationHelp+" to dump the split set (required)")
	cmd.Flags().StringVar(&(config.splitOutputTable), "split-output-table", defaultTable, "table or collection to write the split set to on SQL and MongoDB outputs")
	cmd.Flags().Float64VarP(&(config.trainFraction), "train-fraction", "f", 0.8, "fraction of the records of the set kept in the output set, the rest going to the split set")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random selection of records (defaults to 0: seeded from the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.trainFraction <= 0 || scc.trainFraction > 1 {
		return fmt.Errorf("train-fraction flag was set to an invalid value: it must be greater than 0 and at most 1")
	}
	return nil
}
