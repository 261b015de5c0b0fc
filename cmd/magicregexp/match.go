package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dw1.io/magicregexp"
	"go.dw1.io/magicregexp/internal/json"
	"go.dw1.io/magicregexp/regexp"
)

type matchResult struct {
	Input   string            `json:"input"`
	Matched bool              `json:"matched"`
	Match   string            `json:"match,omitempty"`
	Groups  map[string]string `json:"groups,omitempty"`
}

type matchReport struct {
	Pattern string        `json:"pattern"`
	Engine  string        `json:"engine"`
	Results []matchResult `json:"results"`
}

func newMatchCmd() *cobra.Command {
	var (
		pf     patternFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "match [input...]",
		Short: "Match inputs against a pattern and show the named groups",
		Long: `Compiles the selected pattern and matches every input argument against it.
With no arguments, inputs are read from stdin, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, f, err := pf.load()
			if err != nil {
				return err
			}

			re, err := magicregexp.Compile(f)
			if err != nil {
				return errors.Wrapf(err, "compile %s", name)
			}
			log.Debugf("Compiled %s = %s with %s", name, re, re.Engine())

			inputs := args
			if len(inputs) == 0 {
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			report := matchReport{
				Pattern: re.String(),
				Engine:  re.Engine().String(),
				Results: make([]matchResult, 0, len(inputs)),
			}
			for _, in := range inputs {
				report.Results = append(report.Results, matchOne(re, in))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return errors.Wrap(err, "encode results")
				}
				fmt.Fprintln(out, string(b))
				return nil
			}

			for _, r := range report.Results {
				fmt.Fprintln(out, formatResult(r))
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func matchOne(re *regexp.Regexp, input string) matchResult {
	res := matchResult{Input: input}

	groups, ok := re.NamedSubmatches(input)
	if !ok {
		return res
	}

	res.Matched = true
	res.Match = re.FindString(input)
	if len(groups) > 0 {
		res.Groups = groups
	}
	return res
}

func formatResult(r matchResult) string {
	if !r.Matched {
		return fmt.Sprintf("%q: no match", r.Input)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%q: match %q", r.Input, r.Match)

	names := make([]string, 0, len(r.Groups))
	for name := range r.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, " %s=%q", name, r.Groups[name])
	}
	return sb.String()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return lines, nil
}
