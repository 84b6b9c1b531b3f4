package main

import (
	"fmt"
	"os"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset/inputsample"
	"github.com/lordrook/J48/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*treeCmdConfig
	undefinedValue string
}

type stdoutValueRequester string

func predictCmd(treeConfig *treeCmdConfig) *cobra.Command {
	config := &predictCmdConfig{treeCmdConfig: treeConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a label for a sample answering questions",
		Long:  `Use the loaded tree to predict the target label for a sample answering a reduced set of questions about its attributes`,
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
			sample := inputsample.New(os.Stdin, t.Attributes(), stdoutValueRequester(config.undefinedValue), config.undefinedValue)
			label, err := t.Classify(config.Context(), sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if label == tree.Unknown {
				fmt.Printf("Could not predict %s for the sample\n", t.Target().Name())
				return
			}
			fmt.Printf("Predicted %s is %s\n", t.Target().Name(), label)
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to use will be read and parsed as JSON, or its ID when --redis is set (required)")
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define a sample's value for an attribute as undefined")
	return cmd
}

func (svr stdoutValueRequester) RequestValueFor(a attribute.Attribute) error {
	if a.Continuous() {
		fmt.Printf("Please provide the sample's %s:\n(valid values are decimal numbers or %s if undefined)\n", a.Name(), string(svr))
		return nil
	}
	if values := availableValues(a); len(values) > 0 {
		fmt.Printf("Please provide the sample's %s:\n(valid values are %v or %s if undefined)\n", a.Name(), values, string(svr))
		return nil
	}
	fmt.Printf("Please provide the sample's %s:\n(or %s if undefined)\n", a.Name(), string(svr))
	return nil
}

func (svr stdoutValueRequester) RejectValueFor(a attribute.Attribute, value string) error {
	if a.Continuous() {
		fmt.Printf("%q is not a valid value for the sample's %s. Please provide a decimal number or %s if undefined.\n", value, a.Name(), string(svr))
		return nil
	}
	if values := availableValues(a); len(values) > 0 {
		fmt.Printf("%q is not a valid value for the sample's %s. Please provide one of %v or %s if undefined.\n", value, a.Name(), values, string(svr))
		return nil
	}
	fmt.Printf("%q is not a valid value for the sample's %s. Please provide a non-blank value or %s if undefined.\n", value, a.Name(), string(svr))
	return nil
}

func availableValues(a attribute.Attribute) []string {
	if da, ok := a.(*attribute.DiscreteAttribute); ok {
		return da.AvailableValues()
	}
	return nil
}
