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

	"github.com/Coder-Spirit/belnapian/pkg/belnap"
	"github.com/Coder-Spirit/belnapian/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] operation",
	Short: "print the truth table of an operation.",
	Long: `Print the full truth table of a given operation (and, or, xor,
	not, eq, sup, ann) over a given domain of truth values.`,
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
		//
		domain := GetString(cmd, "domain")
		textwidth := GetUint(cmd, "textwidth")
		//
		values, ok := domains[domain]
		if !ok {
			fmt.Printf("unknown domain %q\n", domain)
			os.Exit(2)
		}
		//
		log.Debug(fmt.Sprintf("tabulating %s over %d values", args[0], len(values)))
		//
		switch args[0] {
		case "not":
			printUnaryTable(values, belnap.Extended.Not, textwidth)
		case "and":
			printBinaryTable(values, belnap.Extended.And, textwidth)
		case "or":
			printBinaryTable(values, belnap.Extended.Or, textwidth)
		case "xor":
			printXorTable(domain, values, textwidth)
		case "eq":
			printBinaryTable(values, belnap.Extended.Eq, textwidth)
		case "sup", "superposition":
			printBinaryTable(values, belnap.Extended.Superposition, textwidth)
		case "ann", "annihilation":
			printBinaryTable(values, belnap.Extended.Annihilation, textwidth)
		default:
			fmt.Printf("unknown operation %q\n", args[0])
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().String("domain", "belnapian", "Set domain of truth values (belnapian, ternary, extended)")
	tableCmd.Flags().Uint("textwidth", 130, "Set maximum textwidth to use")
}

// domains maps each tabulatable domain onto its carrier, embedded into the
// extended values so that a single set of combinators covers all of them.
var domains = map[string][]belnap.Extended{
	"belnapian": {
		belnap.Known(belnap.Neither), belnap.Known(belnap.False),
		belnap.Known(belnap.True), belnap.Known(belnap.Both),
	},
	"ternary": {
		belnap.Known(belnap.False), belnap.Uncertain(belnap.FT),
		belnap.Known(belnap.True),
	},
	"extended": {
		belnap.Known(belnap.Neither), belnap.Known(belnap.False),
		belnap.Known(belnap.True), belnap.Known(belnap.Both),
		belnap.Uncertain(belnap.NF), belnap.Uncertain(belnap.NT),
		belnap.Uncertain(belnap.FT), belnap.Uncertain(belnap.NFT),
		belnap.Uncertain(belnap.NB), belnap.Uncertain(belnap.FB),
		belnap.Uncertain(belnap.NFB), belnap.Uncertain(belnap.TB),
		belnap.Uncertain(belnap.NTB), belnap.Uncertain(belnap.FTB),
		belnap.Uncertain(belnap.NFTB),
	},
}

func printBinaryTable(values []belnap.Extended, fn func(belnap.Extended, belnap.Extended) belnap.Extended, textwidth uint) {
	var (
		n     = uint(len(values))
		table = termio.NewTablePrinter(n+1, n+1)
		bold  = termio.BoldAnsiEscape().Build()
	)
	// Header row and column
	for i, v := range values {
		table.Set(uint(i)+1, 0, v.String())
		table.SetEscape(uint(i)+1, 0, bold)
		table.Set(0, uint(i)+1, v.String())
		table.SetEscape(0, uint(i)+1, bold)
	}
	// Body
	for i, lhs := range values {
		for j, rhs := range values {
			table.Set(uint(j)+1, uint(i)+1, fn(lhs, rhs).String())
		}
	}
	//
	table.SetMaxWidths(maxTableWidth(textwidth))
	table.Print()
}

func printUnaryTable(values []belnap.Extended, fn func(belnap.Extended) belnap.Extended, textwidth uint) {
	var (
		n     = uint(len(values))
		table = termio.NewTablePrinter(2, n+1)
		bold  = termio.BoldAnsiEscape().Build()
	)
	//
	table.SetRow(0, "a", "!a")
	table.SetEscape(0, 0, bold)
	table.SetEscape(1, 0, bold)
	//
	for i, v := range values {
		table.SetRow(uint(i)+1, v.String(), fn(v).String())
	}
	//
	table.SetMaxWidths(maxTableWidth(textwidth))
	table.Print()
}

// printXorTable tabulates exclusive disjunction, which only the fully known
// domains support.
func printXorTable(domain string, values []belnap.Extended, textwidth uint) {
	switch domain {
	case "belnapian":
		printBinaryTable(values, func(a, b belnap.Extended) belnap.Extended {
			ka, _ := a.Known()
			kb, _ := b.Known()
			//
			return belnap.Known(ka.Xor(kb))
		}, textwidth)
	case "ternary":
		printBinaryTable(values, func(a, b belnap.Extended) belnap.Extended {
			ta, _ := a.Ternary()
			tb, _ := b.Ternary()
			//
			return belnap.ExtendedFromTernary(ta.Xor(tb))
		}, textwidth)
	default:
		fmt.Printf("xor is not defined over domain %q\n", domain)
		os.Exit(2)
	}
}
