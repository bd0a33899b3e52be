// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"bufio"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Canonicalize equations interactively.",
	Long: `Canonicalize equations interactively, one per line, until EOF.
	A failed equation reports its error and the loop continues.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Only prompt when attached to an actual terminal.
		interactive := term.IsTerminal(0)
		scanner := bufio.NewScanner(os.Stdin)
		//
		for {
			if interactive {
				fmt.Print("enter an equation>>> ")
			}
			//
			if !scanner.Scan() {
				break
			}
			//
			line := scanner.Text()
			if line == "" {
				continue
			}
			//
			result, err := canonicalize(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			//
			fmt.Println(result)
			fmt.Println()
		}
		//
		if err := scanner.Err(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
