package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridkit/internal/core"
)

type simInfo struct {
	Name   string            `json:"name"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Params map[string]string `json:"params,omitempty"`
}

func newSimsCmd(root *rootOptions) *cobra.Command {
	var showParams bool
	var set map[string]string
	cmd := &cobra.Command{
		Use:   "sims [name...]",
		Short: "List the registered simulations",
		Long: `The sims command lists every registered simulation with its default
size. With --params it also prints each parameter as key=value, the same
keys --set accepts.

Example:
  gridctl sims
  gridctl sims cave --params --set w=32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = core.Names()
			}
			var infos []simInfo
			var groups [][]core.ParameterGroup
			for _, name := range names {
				sim, err := core.New(name, set)
				if err != nil {
					return err
				}
				b := sim.Bounds()
				info := simInfo{Name: name, Width: b.Width(), Height: b.Height()}
				var g []core.ParameterGroup
				if p, ok := sim.(core.ParameterProvider); ok {
					snap := p.Parameters()
					g = snap.Groups
					if showParams || root.jsonOut {
						info.Params = snap.Map()
					}
				}
				infos = append(infos, info)
				groups = append(groups, g)
			}

			out := cmd.OutOrStdout()
			if root.jsonOut {
				return printJSON(out, infos)
			}
			for i, info := range infos {
				fmt.Fprintf(out, "%-12s %dx%d\n", info.Name, info.Width, info.Height)
				if !showParams {
					continue
				}
				for _, g := range groups[i] {
					fmt.Fprintf(out, "  %s\n", g.Name)
					for _, param := range g.Params {
						fmt.Fprintf(out, "    %s=%s\t%s\n", param.Key, param.Value, param.Label)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showParams, "params", false, "print the parameters of each simulation")
	cmd.Flags().StringToStringVar(&set, "set", nil, "simulation parameters as key=value pairs")
	return cmd
}
