package main

import (
	"fmt"
	"os"

	"github.com/lordrook/J48/tree"
	"github.com/lordrook/J48/tree/json"
	"github.com/lordrook/J48/tree/redisstore"
	"github.com/spf13/cobra"
	"gopkg.in/redis.v5"
)

const redisTreePrefix = "j48:tree"

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput string
	redisAddr string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Manage decision trees",
		Long:  `Manage decision trees and use them to classify samples`,
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
			config.Logf("Tree with %d leaves and depth %d", t.Leaves(), t.Depth())
			fmt.Print(t)
		},
	}
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of a redis server on which trees are stored and from which they are loaded by ID")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to show will be read and parsed as JSON, or its ID when --redis is set (required)")
	cmd.AddCommand(growCmd(config), testCmd(config), predictCmd(config))
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (tcc *treeCmdConfig) store() tree.Store {
	return redisstore.New(redis.NewClient(&redis.Options{Addr: tcc.redisAddr}), redisTreePrefix, json.New())
}

func (tcc *treeCmdConfig) loadTree() (*tree.Tree, error) {
	if tcc.redisAddr != "" {
		tcc.Logf("Loading tree %s from redis at %s...", tcc.treeInput, tcc.redisAddr)
		s := tcc.store()
		defer s.Close(tcc.Context())
		t, err := s.Get(tcc.Context(), tcc.treeInput)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("tree %s not found on redis at %s", tcc.treeInput, tcc.redisAddr)
		}
		return t, nil
	}
	tcc.Logf("Reading tree from %s...", tcc.treeInput)
	f, err := os.Open(tcc.treeInput)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", tcc.treeInput, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(f)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %v", tcc.treeInput, err)
	}
	return t, err
}

func (tcc *treeCmdConfig) outputTree(output string, t *tree.Tree) error {
	if tcc.redisAddr != "" {
		tcc.Logf("Storing tree on redis at %s...", tcc.redisAddr)
		s := tcc.store()
		defer s.Close(tcc.Context())
		id, err := s.Create(tcc.Context(), t)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	}
	if output == "" {
		return json.WriteJSONTree(t, os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = json.WriteJSONTree(t, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
