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

	"github.com/spf13/cobra"

	"github.com/notargets/polylib/InputParameters"
	"github.com/notargets/polylib/mp"
	"github.com/notargets/polylib/polys"
)

// BasisModel carries the resolved evaluation job for the basis command
type BasisModel struct {
	Shape      string
	Order      int
	JobFile    string
	Nodal      bool
	Gradients  bool
	Points     []polys.Point
	EvalPoints []polys.Point
}

// BasisCmd represents the basis command
var BasisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Evaluate modal and nodal bases for a reference element",
	Long: `
Builds the orthonormal basis for one element shape and order, prints its
Vandermonde matrix over the defining point set and, on request, the nodal
basis values and gradients at the evaluation points.

polylib basis `,
	Run: func(cmd *cobra.Command, args []string) {
		bm := &BasisModel{}
		bm.Shape, _ = cmd.Flags().GetString("shape")
		bm.Order, _ = cmd.Flags().GetInt("order")
		bm.JobFile, _ = cmd.Flags().GetString("inputFile")
		bm.Nodal, _ = cmd.Flags().GetBool("nodal")
		bm.Gradients, _ = cmd.Flags().GetBool("gradients")
		processBasisInput(bm)
		RunBasis(bm)
	},
}

func init() {
	rootCmd.AddCommand(BasisCmd)
	BasisCmd.Flags().StringP("shape", "s", "line", "element shape: line, tri, quad, tet, pri, pyr, hex")
	BasisCmd.Flags().IntP("order", "n", 3, "basis order (number of 1D modes)")
	BasisCmd.Flags().StringP("inputFile", "I", "", "YAML evaluation job file")
	BasisCmd.Flags().Bool("nodal", false, "print the nodal basis at the evaluation points")
	BasisCmd.Flags().Bool("gradients", false, "print basis gradients as well as values")
}

func processBasisInput(bm *BasisModel) {
	if len(bm.JobFile) != 0 {
		data, err := os.ReadFile(bm.JobFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ip := &InputParameters.InputParameters{}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ip.Print()
		if ip.DPS != 0 {
			mp.SetDPS(ip.DPS)
		}
		bm.Shape = ip.Shape
		bm.Order = ip.Order
		for _, pt := range ip.Points {
			bm.Points = append(bm.Points, polys.Point(pt))
		}
		for _, pt := range ip.EvalPoints {
			bm.EvalPoints = append(bm.EvalPoints, polys.Point(pt))
		}
	}
	if len(bm.Points) == 0 {
		pts, err := polys.StdPoints(bm.Shape, bm.Order)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		bm.Points = pts
	}
	if len(bm.EvalPoints) == 0 {
		bm.EvalPoints = bm.Points
	}
}

func RunBasis(bm *BasisModel) {
	pb, err := polys.NewPolyBasis(bm.Shape, bm.Order, bm.Points)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%s basis, order %d, %d modes over %d points\n",
		pb.Name(), bm.Order, pb.NumModes(), len(bm.Points))

	fmt.Printf("V = \n%v\n", pb.Vandermonde())
	fmt.Printf("orthonormal basis at eval points = \n%v\n",
		pb.OrthoBasisAt(bm.EvalPoints))
	if bm.Gradients {
		for d, J := range pb.JacOrthoBasisAt(bm.EvalPoints) {
			fmt.Printf("orthonormal basis gradient, axis %d = \n%v\n", d, J)
		}
	}
	if bm.Nodal {
		N, err := pb.NodalBasisAt(bm.EvalPoints)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("nodal basis at eval points = \n%v\n", N)
		if bm.Gradients {
			J, err := pb.JacNodalBasisAt(bm.EvalPoints)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			for d, Jd := range J {
				fmt.Printf("nodal basis gradient, axis %d = \n%v\n", d, Jd)
			}
		}
	}
}
