package genomic_test

import (
	"fmt"

	"github.com/katalvlaran/breedlab/genomic"
)

// ExampleBuild shows two animals with opposite homozygous genotypes: each is
// fully related to itself and negatively related to the other.
func ExampleBuild() {
	res, err := genomic.Build([][]float64{{0, 2}, {2, 0}, {1, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g00, _ := res.G.At(0, 0)
	g01, _ := res.G.At(0, 1)
	fmt.Println("freqs:", res.Freqs)
	fmt.Println("scale:", res.Scale)
	fmt.Println("G[0][0]:", g00, "G[0][1]:", g01)

	// Output:
	// freqs: [0.5 0.5]
	// scale: 1
	// G[0][0]: 2 G[0][1]: -2
}
