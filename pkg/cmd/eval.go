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

	"github.com/Coder-Spirit/belnapian/pkg/belnap"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "evaluate a truth expression.",
	Long: `Evaluate a given truth expression built from literals (e.g. True,
	Both, NF__), variables, negation (!), conjunction (&&), disjunction
	(||), equality (==), superposition (<+>) and annihilation (<->).
	Variables are bound with --set.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Construct variable bindings
		env := parseBindings(GetStringArray(cmd, "set"))
		// Parse expression
		expr := parseExpr(args[0], func(name string) bool {
			_, ok := env[name]
			return ok
		})
		//
		log.Debug(fmt.Sprintf("evaluating %s with %d binding(s)", expr, len(env)))
		// Evaluate and print
		value := expr.Eval(func(name string) belnap.Extended {
			return env[name]
		})
		//
		if value.IsUnknown() {
			fmt.Printf("%s (uncertain)\n", value)
		} else {
			fmt.Println(value)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArray("set", nil, "Bind a variable, e.g. --set x=True")
}

// parseBindings turns a set of name=value pairs into an evaluation
// environment, exiting on malformed pairs.
func parseBindings(bindings []string) map[string]belnap.Extended {
	env := make(map[string]belnap.Extended)
	//
	for _, binding := range bindings {
		name, value, ok := strings.Cut(binding, "=")
		//
		if !ok || name == "" {
			fmt.Printf("malformed binding %q\n", binding)
			os.Exit(2)
		}
		//
		env[name] = parseValue(value)
	}
	//
	return env
}
