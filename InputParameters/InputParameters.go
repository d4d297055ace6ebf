package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file describing a basis
// evaluation job
type InputParameters struct {
	Title      string      `yaml:"Title"`
	Shape      string      `yaml:"Shape"` // one of line, tri, quad, tet, pri, pyr, hex
	Order      int         `yaml:"Order"`
	Points     [][]float64 `yaml:"Points"`     // defining (nodal) point set; empty for modal only
	EvalPoints [][]float64 `yaml:"EvalPoints"` // where to evaluate; defaults to Points
	DPS        int         `yaml:"DPS"`        // extended precision decimal digits; 0 keeps the default
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Shape\n", ip.Shape)
	fmt.Printf("[%d]\t\t\t= Order\n", ip.Order)
	fmt.Printf("[%d]\t\t\t= Defining Points\n", len(ip.Points))
	fmt.Printf("[%d]\t\t\t= Evaluation Points\n", len(ip.EvalPoints))
	if ip.DPS != 0 {
		fmt.Printf("[%d]\t\t\t= Precision (decimal digits)\n", ip.DPS)
	}
}
