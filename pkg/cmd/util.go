package cmd

import (
	"fmt"
	"os"

	"github.com/Coder-Spirit/belnapian/pkg/belnap"
	"github.com/Coder-Spirit/belnapian/pkg/belnap/bexp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or panic if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// maxTableWidth determines an upper bound on column widths, capped by the
// terminal width when writing to one.
func maxTableWidth(textwidth uint) uint {
	if term.IsTerminal(0) {
		if width, _, err := term.GetSize(0); err == nil && uint(width) < textwidth {
			return uint(width)
		}
	}
	//
	return textwidth
}

// Parse an expression, or exit with its syntax errors.
func parseExpr(input string, environment func(string) bool) bexp.Term {
	expr, errs := bexp.Parse(input, environment)
	//
	if len(errs) != 0 {
		for _, err := range errs {
			printSyntaxError(&err, input)
		}
		//
		os.Exit(2)
	}
	//
	return expr
}

// Parse a truth value, or exit with an error.
func parseValue(input string) belnap.Extended {
	value, err := belnap.ParseExtended(input)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return value
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *bexp.SyntaxError, text string) {
	var (
		span  = err.Span()
		width = max(1, span.End()-span.Start())
	)
	// Print error message
	fmt.Printf("expr:%d: %s\n", span.Start(), err.Message())
	// Print line
	fmt.Println(text)
	// Print indent (todo: account for tabs)
	for i := 0; i < span.Start(); i++ {
		fmt.Print(" ")
	}
	// Print highlight
	for i := 0; i < width; i++ {
		fmt.Print("^")
	}
	//
	fmt.Println()
}
