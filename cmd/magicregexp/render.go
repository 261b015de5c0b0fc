package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dw1.io/magicregexp"
	"go.dw1.io/magicregexp/definition"
)

type patternFlags struct {
	file    string
	pattern string
}

func (p *patternFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.file, "file", "f", "", "Pattern file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&p.pattern, "pattern", "p", "", "Name of the pattern to use")
	_ = cmd.MarkFlagRequired("file")
}

// load returns the selected pattern. With no name given, a file holding a
// single pattern selects that one.
func (p *patternFlags) load() (string, magicregexp.Fragment, error) {
	set, err := definition.Load(p.file)
	if err != nil {
		return "", nil, err
	}

	name := p.pattern
	if name == "" {
		names := set.Names()
		if len(names) != 1 {
			return "", nil, errors.Errorf("%s has %d patterns, choose one with --pattern", p.file, len(names))
		}
		name = names[0]
	}

	f, err := set.Fragment(name)
	if err != nil {
		return "", nil, err
	}
	return name, f, nil
}

func newRenderCmd() *cobra.Command {
	var (
		pf  patternFlags
		all bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the regular expression for a pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if all {
				set, err := definition.Load(pf.file)
				if err != nil {
					return err
				}
				for _, name := range set.Names() {
					f, err := set.Fragment(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\t%s\n", name, magicregexp.Render(f))
				}
				return nil
			}

			name, f, err := pf.load()
			if err != nil {
				return err
			}
			log.Debugf("Rendering %s from %s", name, pf.file)
			fmt.Fprintln(out, magicregexp.Render(f))
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every pattern in the file as name<TAB>pattern")

	return cmd
}
