// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║╚██╗ ██╔╝██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║ ╚████╔╝ ██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║  ╚███╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝   ╚══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing ordered container with O(1) min/max and ring-threaded iterators [Version: %s%s%s]
`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Walk through the container API on a small tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run builds a small tree and demonstrates insert, find, erase and traversal`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			n, _ := cmd.Flags().GetInt("size")
			if err := runDemo(n); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	cmdRun.Flags().Int("size", 15, "number of values in the demo tree")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the tree against a baseline ordered container",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench times insert, find, traverse and erase over a shuffled workload`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			path, _ := cmd.Flags().GetString("config")
			config, err := LoadBenchConfig(path)
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
				config = &defaultBenchConfig
			}
			if size, _ := cmd.Flags().GetInt("size"); size > 0 {
				config.Bench.Size = size
			}
			if noBase, _ := cmd.Flags().GetBool("no-baseline"); noBase {
				config.Bench.Baseline = false
			}
			if err := runBench(config); err != nil {
				log.Fatalf("Benchmark failed: %v", err)
			}
		},
	}
	cmdBench.Flags().String("config", "", "path to YAML benchmark config (default ~/.avlbench.yaml)")
	cmdBench.Flags().Int("size", 0, "override workload size from config")
	cmdBench.Flags().Bool("no-baseline", false, "skip the baseline container comparison")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the avltree usage guide",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the avltree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo walkthrough when no subcommand is given
			if err := runDemo(15); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdBench, cmdUsage, cmdVersion)
	rootCmd.Execute()
}
