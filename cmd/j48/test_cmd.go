package main

import (
	"fmt"
	"os"

	"github.com/lordrook/J48/evaluation"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*treeCmdConfig
	dataInput     string
	table         string
	metadataInput string
	resultsOutput string
	parallelism   int
}

func testCmd(treeConfig *treeCmdConfig) *cobra.Command {
	config := &testCmdConfig{treeCmdConfig: treeConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := config.loadTree()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			attrs, err := readMetadata(config.logger, config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if attrs.Len() == 0 {
				attrs = t.Attributes()
			}
			testingSet, err := readDataset(config.Context(), config.logger, config.dataInput, config.table, attrs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Testing tree against testset with %d records...", testingSet.Len())
			results, err := evaluation.Evaluate(config.Context(), t, testingSet, config.parallelism)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			fmt.Println(results)
			fmt.Print(results.ConfusionMatrix())
			if config.resultsOutput == "" {
				return
			}
			config.Logf("Writing results to %s...", config.resultsOutput)
			f, err := os.Create(config.resultsOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			err = results.WriteCSV(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing results to %s: %v\n", config.resultsOutput, err)
				os.Exit(7)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to test will be read and parsed as JSON, or its ID when --redis is set (required)")
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path or URL to "+datasetLocationHelp+" with data to test the tree against (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVar(&(config.table), "table", defaultTable, "table or collection holding the data on SQL and MongoDB inputs")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file declaring the attributes of the input, the target last (defaults to the attributes of the tree)")
	cmd.Flags().StringVarP(&(config.resultsOutput), "results", "r", "", "path to a CSV file to which the actual and predicted label of every record will be written")
	cmd.Flags().IntVar(&(config.parallelism), "parallelism", 0, "number of records classified at the same time (defaults to 0: one per CPU)")
	return cmd
}
