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
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// loadConfigOrDefault never fails: a broken config file means defaults
func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return DefaultConfig()
	}
	return config
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗         ███████╗████████╗ ██████╗ ██████╗ ███████╗
██╔══██╗██║   ██║██║         ██╔════╝╚══██╔══╝██╔═══██╗██╔══██╗██╔════╝
███████║██║   ██║██║         ███████╗   ██║   ██║   ██║██████╔╝█████╗
██╔══██║╚██╗ ██╔╝██║         ╚════██║   ██║   ██║   ██║██╔══██╗██╔══╝
██║  ██║ ╚████╔╝ ███████╗    ███████║   ██║   ╚██████╔╝██║  ██║███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝    ╚══════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝
In-memory ordered key store on a self-balancing AVL tree [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Replays a command file into an output file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes every line of the input file and writes one line per Search to the output file`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()

			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			if input == "" {
				input = config.Run.Input
			}
			if output == "" {
				output = config.Run.Output
			}
			if cmd.Flags().Changed("progress") {
				config.Run.ShowProgress, _ = cmd.Flags().GetBool("progress")
			}
			if cmd.Flags().Changed("check") {
				config.Run.VerifyInvariants, _ = cmd.Flags().GetBool("check")
			}

			if _, err := runFile(config, input, output); err != nil {
				log.Fatalf("Error replaying commands: %v", err)
			}
		},
	}
	cmdRun.Flags().String("input", "", "command file to replay (default from config, input.txt)")
	cmdRun.Flags().String("output", "", "file receiving Search results (default from config, output.txt)")
	cmdRun.Flags().Bool("progress", false, "show a progress bar on stderr")
	cmdRun.Flags().Bool("check", false, "verify tree invariants after every command")

	var cmdExec = &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Runs commands given as arguments",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs each argument as one command and prints Search results to stdout`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()

			lines := make([]CommandLine, 0, len(args))
			for i, arg := range args {
				lines = append(lines, CommandLine{Number: i + 1, Text: arg})
			}

			if err := NewReplayer(config).Replay(lines, os.Stdout, false); err != nil {
				log.Fatalf("Error executing commands: %v", err)
			}
		},
	}

	var cmdPrint = &cobra.Command{
		Use:   "print",
		Short: "Replays a command file and prints the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Print replays the input file and draws the resulting tree as ASCII art`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()

			input, _ := cmd.Flags().GetString("input")
			if input == "" {
				input = config.Run.Input
			}

			lines, err := readCommandFile(input)
			if err != nil {
				log.Fatalf("Error reading commands: %v", err)
			}

			replayer := NewReplayer(config)
			if err := replayer.Replay(lines, io.Discard, false); err != nil {
				log.Fatalf("Error replaying commands: %v", err)
			}

			store := replayer.Store()
			if store == nil {
				fmt.Println("No tree: the file never calls Initialize()")
				return
			}
			fmt.Println(RenderStore(NewRenderCache(config.RenderCacheExpiration()), store))
			fmt.Printf("%skeys: %d, height: %d%s\n", Info, store.Tree().Len(), store.Tree().Height(), Reset)
		},
	}
	cmdPrint.Flags().String("input", "", "command file to replay (default from config, input.txt)")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Opens the interactive shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell lets you type commands and watch the tree rebalance`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runBubbleTeaApp(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the current configuration and creates a default config file if none exists`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlstore usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlstore CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlstore version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlstore",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to replaying the configured files
			config := loadConfigOrDefault()
			if _, err := runFile(config, config.Run.Input, config.Run.Output); err != nil {
				log.Fatalf("Error replaying commands: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdExec, cmdPrint, cmdShell, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
