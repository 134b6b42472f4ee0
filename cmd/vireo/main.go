// Copyright 2024-2025 vireodb
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.uber.org/zap"

	"github.com/vireodb/vireo/pkg/util"
)

func init() {
	cobra.OnInitialize(loadConfig)
	initSortCmd()
	initGroupCmd()
}

var vireoCfg = &util.Config{}

///root cmd

var info = "vireo"
var RootCmd = &cobra.Command{
	Use:          "vireo",
	Short:        info,
	Long:         info,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("use vireo --help or -h")
	},
}

func initCommonCfg() {
	vireoCfg.Input.Path = viper.GetString("input.path")
	vireoCfg.Input.Header = viper.GetBool("input.header")
	vireoCfg.Keys = viper.GetString("keys")
	vireoCfg.Debug.Explain = viper.GetBool("debug.explain")
	vireoCfg.Debug.PrintResult = viper.GetBool("debug.printResult")
	vireoCfg.Debug.MaxOutputRowCount = viper.GetInt("debug.maxOutputRowCount")
}

//sort cmd

var sortInfo = "sort a csv by a key spec"
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: sortInfo,
	Long:  sortInfo,
	RunE: func(cmd *cobra.Command, args []string) error {
		initCommonCfg()
		return runSort(vireoCfg)
	},
}

func initSortCmd() {
	RootCmd.AddCommand(sortCmd)
	sortCmd.Flags().StringVar(&vireoCfg.Input.Path, "input", "", "csv file path")
	sortCmd.Flags().BoolVar(&vireoCfg.Input.Header, "header", true, "first csv line is a header")
	sortCmd.Flags().StringVar(&vireoCfg.Keys, "keys", "", "key spec. col[:asc|desc[:first|last]],...")
	sortCmd.Flags().BoolVar(&vireoCfg.Debug.Explain, "explain", false, "print the table schema")
	sortCmd.Flags().BoolVar(&vireoCfg.Debug.PrintResult, "print_result", true, "print the sorted rows")
	sortCmd.Flags().IntVar(&vireoCfg.Debug.MaxOutputRowCount, "max_output_row_count", 0, "print first N rows only. 0 means all")

	viper.BindPFlag("input.path", sortCmd.Flags().Lookup("input"))
	viper.BindPFlag("input.header", sortCmd.Flags().Lookup("header"))
	viper.BindPFlag("keys", sortCmd.Flags().Lookup("keys"))
	viper.BindPFlag("debug.explain", sortCmd.Flags().Lookup("explain"))
	viper.BindPFlag("debug.printResult", sortCmd.Flags().Lookup("print_result"))
	viper.BindPFlag("debug.maxOutputRowCount", sortCmd.Flags().Lookup("max_output_row_count"))
}

//group cmd

var groupInfo = "group a csv by key columns"
var groupCmd = &cobra.Command{
	Use:   "group",
	Short: groupInfo,
	Long:  groupInfo,
	RunE: func(cmd *cobra.Command, args []string) error {
		initCommonCfg()
		return runGroup(vireoCfg, includeNulls)
	},
}

var includeNulls bool

func initGroupCmd() {
	RootCmd.AddCommand(groupCmd)
	groupCmd.Flags().StringVar(&vireoCfg.Input.Path, "input", "", "csv file path")
	groupCmd.Flags().BoolVar(&vireoCfg.Input.Header, "header", true, "first csv line is a header")
	groupCmd.Flags().StringVar(&vireoCfg.Keys, "keys", "", "key columns. col,col,...")
	groupCmd.Flags().BoolVar(&includeNulls, "include_nulls", false, "treat null keys as a groupable value")
	groupCmd.Flags().BoolVar(&vireoCfg.Debug.Explain, "explain", false, "print the table schema")
	groupCmd.Flags().BoolVar(&vireoCfg.Debug.PrintResult, "print_result", true, "print group offsets and unique keys")
	groupCmd.Flags().IntVar(&vireoCfg.Debug.MaxOutputRowCount, "max_output_row_count", 0, "print first N rows only. 0 means all")

	viper.BindPFlag("input.path", groupCmd.Flags().Lookup("input"))
	viper.BindPFlag("input.header", groupCmd.Flags().Lookup("header"))
	viper.BindPFlag("keys", groupCmd.Flags().Lookup("keys"))
	viper.BindPFlag("debug.explain", groupCmd.Flags().Lookup("explain"))
	viper.BindPFlag("debug.printResult", groupCmd.Flags().Lookup("print_result"))
	viper.BindPFlag("debug.maxOutputRowCount", groupCmd.Flags().Lookup("max_output_row_count"))
}

var defCfgFilePaths = []string{".", "etc"}
var cfgFileName = "vireo.toml"

// loadConfig picks up vireo.toml when present; flags alone are enough.
func loadConfig() {
	for _, dirPath := range defCfgFilePaths {
		fpath := filepath.Join(dirPath, cfgFileName)
		if util.FileIsValid(fpath) {
			viper.SetConfigFile(fpath)
			err := viper.ReadInConfig()
			if err != nil {
				util.Error("viper load config file failed",
					zap.String("fpath", fpath),
					zap.Error(err))
				continue
			}
			break
		}
	}
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
