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
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-equation/pkg/algebra"
	"github.com/consensys/go-equation/pkg/equation"
)

// canonCmd represents the canon command
var canonCmd = &cobra.Command{
	Use:   "canon [flags] [equation...]",
	Short: "Canonicalize one or more equations.",
	Long: `Canonicalize one or more equations into "expression = 0" form.
	Equations are given as arguments, or read line by line from an input
	file in batch mode.  Valid variable names are: t, u, v, w, x, y, z.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if GetFlag(cmd, "batch") {
			canonBatch(GetString(cmd, "input-file"), GetString(cmd, "output-file"))
			return
		}
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		for _, arg := range args {
			result, err := canonicalize(arg)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(result)
		}
	},
}

// canonBatch canonicalizes every line of the input file, appending results to
// the output file (truncated first).  A failed equation is logged and
// skipped; the remaining equations are still processed, in input order.
func canonBatch(inputFile string, outputFile string) {
	bytes, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	out, err := os.Create(outputFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer out.Close()
	//
	for _, line := range strings.Split(string(bytes), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		//
		result, err := canonicalize(line)
		if err != nil {
			log.Errorf("skipping %q: %v", line, err)
			continue
		}
		//
		log.Debugf("%s => %s", line, result)
		//
		if _, err := fmt.Fprintln(out, result); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
}

// canonicalize runs the full pipeline for a single raw equation string.
func canonicalize(raw string) (string, error) {
	eq, err := equation.New(raw)
	if err != nil {
		return "", err
	}
	//
	return eq.Canonicalize(algebra.Engine{})
}

func init() {
	rootCmd.AddCommand(canonCmd)
	canonCmd.Flags().BoolP("batch", "b", false, "process equations in batch")
	canonCmd.Flags().StringP("input-file", "i", "equations.in",
		"get the equations from this file in batch mode")
	canonCmd.Flags().StringP("output-file", "o", "equations.out",
		"write the canonicalized equations to this file in batch mode")
}
