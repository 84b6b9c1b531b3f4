package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lordrook/J48"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*treeCmdConfig
	dataInput     string
	table         string
	metadataInput string
	output        string
	pruneStrategy string
	maxDepth      int
	parallelism   int
	profile       bool
}

func growCmd(treeConfig *treeCmdConfig) *cobra.Command {
	config := &growCmdConfig{treeCmdConfig: treeConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict its target attribute.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			pruner, err := pruningStrategy(config.pruneStrategy)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			attrs, err := readMetadata(config.logger, config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			trainingSet, err := readDataset(config.Context(), config.logger, config.dataInput, config.table, attrs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading training set: %v\n", err)
				os.Exit(4)
			}
			b := j48.New(
				j48.WithPruner(pruner),
				j48.MaxDepth(config.maxDepth),
				j48.Parallelism(config.parallelism),
				j48.WithLogger(config.logger),
			)
			config.Logf("Growing tree from a set with %d records and %d attributes to predict %s ...", trainingSet.Len(), trainingSet.Attributes().Len()-1, trainingSet.Target().Name())
			var p interface{ Stop() }
			if config.profile {
				p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
			}
			t, err := b.Build(config.Context(), trainingSet, trainingSet.Attributes())
			if p != nil {
				p.Stop()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			config.Logf("%v", t)
			err = config.outputTree(config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path or URL to "+datasetLocationHelp+" with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVar(&(config.table), "table", defaultTable, "table or collection holding the data on SQL and MongoDB inputs")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file declaring the attributes of the input, the target last (inferred from the data when not set)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format (defaults to STDOUT, ignored when --redis is set)")
	cmd.Flags().StringVarP(&(config.pruneStrategy), "prune", "p", "mdl", "pruning strategy to apply to continuous splits, the following are valid: mdl, fayyad-irani, minimum-information-gain:[VALUE], none")
	cmd.Flags().IntVar(&(config.maxDepth), "max-depth", 0, "maximum depth of the tree (defaults to 0: no limit)")
	cmd.Flags().IntVar(&(config.parallelism), "parallelism", 1, "maximum number of subtrees grown at the same time")
	cmd.Flags().BoolVar(&(config.profile), "profile", false, "write a CPU profile of the growth to the working directory")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.maxDepth < 0 {
		return fmt.Errorf("max-depth flag was set to an invalid value: it must not be negative")
	}
	if gcc.parallelism < 1 {
		return fmt.Errorf("parallelism flag was set to an invalid value: it must be at least 1")
	}
	return nil
}

func pruningStrategy(ps string) (j48.Pruner, error) {
	parsedPS := strings.SplitN(ps, ":", 2)
	ps = parsedPS[0]
	switch ps {
	case "mdl", "default":
		return j48.MDLPruner(), nil
	case "fayyad-irani":
		return j48.FayyadIraniPruner(), nil
	case "none":
		return j48.NoPruner(), nil
	case "minimum-information-gain":
		if len(parsedPS) < 2 {
			return nil, fmt.Errorf("minimum-information-gain pruning strategy requires a value, as in minimum-information-gain:0.1")
		}
		minimum, err := strconv.ParseFloat(parsedPS[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing minimum-information-gain parameter: %v", err)
		}
		return j48.FixedInformationGainPruner(minimum), nil
	}
	return nil, fmt.Errorf("unknown pruning strategy %s", ps)
}
