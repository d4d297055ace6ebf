/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/notargets/polylib/polys"
)

// TableCmd represents the table command
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print basis cardinalities and degree tables",
	Long: `
Prints, for each element shape, the basis cardinality at the requested order
and the total polynomial degree of each basis function in canonical order.

polylib table `,
	Run: func(cmd *cobra.Command, args []string) {
		order, _ := cmd.Flags().GetInt("order")
		names := polys.ShapeNames()
		sort.Strings(names)
		for _, name := range names {
			pb, err := polys.NewPolyBasis(name, order, nil)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			fmt.Printf("%-4s order %d: %3d modes, degrees %v\n",
				name, order, pb.NumModes(), pb.Degrees())
		}
	},
}

func init() {
	rootCmd.AddCommand(TableCmd)
	TableCmd.Flags().IntP("order", "n", 3, "basis order (number of 1D modes)")
}
