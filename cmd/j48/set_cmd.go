package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput      string
	inputTable    string
	metadataInput string
	setOutput     string
	outputTable   string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Manage sets of data, copying them from one storage to another`,
		Run: func(cmd *cobra.Command, args []string) {
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
			err = writeDataset(config.Context(), config.logger, config.setOutput, config.outputTable, ds)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing output set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done: %d records copied", ds.Len())
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path or URL to "+datasetLocationHelp+" to read the set from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVar(&(config.inputTable), "table", defaultTable, "table or collection holding the data on SQL and MongoDB inputs")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file declaring the attributes of the input, the target last (inferred from the data when not set)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path or URL to "+datasetLocationHelp+" to dump the output set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVar(&(config.outputTable), "output-table", defaultTable, "table or collection to write the data to on SQL and MongoDB outputs")
	cmd.AddCommand(splitCmd(config))
	return cmd
}
