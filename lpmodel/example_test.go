// Package lpmodel_test provides runnable examples for the model builder.
// Each example doubles as documentation via "go test -run Example".
package lpmodel_test

import (
	"fmt"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/lpmodel"
)

// ExampleBuild demonstrates the structural translation: variables exist only
// for soil-compatible (crop, parcel) pairs, and every model carries the two
// land rows plus the three global budget rows.
func ExampleBuild() {
	// 1) Two crops: Wheat grows on loam only, Corn on loam and sand.
	wheat := agro.NewCrop("Wheat", 1200, 4000, 25, 700, 120, agro.SeasonFall, agro.SoilLoamy)
	corn := agro.NewCrop("Corn", 1500, 5500, 30, 900, 90, agro.SeasonSpring, agro.SoilLoamy, agro.SoilSandy)

	// 2) Two parcels: 50 ha of loam and 30 ha of sand. Wheat cannot use P2,
	//    so the pair (Wheat, P2) receives no variable at all.
	p := agro.NewProblem("pairs-demo",
		[]agro.Crop{wheat, corn},
		[]agro.LandParcel{
			agro.NewParcel("P1", 50, agro.SoilLoamy),
			agro.NewParcel("P2", 30, agro.SoilSandy),
		},
		agro.NewResources(200000, 400000, 4000))

	// 3) Build the LP. Rows: land_P1, land_P2, water, labor, budget; the
	//    defaulted crops add no per-crop area rows and no notes.
	m, err := lpmodel.Build(p)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println("maximize:", m.Maximize)
	fmt.Println("variables:", len(m.Vars))
	fmt.Println("constraints:", len(m.Cons))
	fmt.Println("notes:", len(m.Notes))
	fmt.Println("first:", m.Vars[0].Name)

	// Output:
	// maximize: true
	// variables: 3
	// constraints: 5
	// notes: 0
	// first: allocate_Wheat_P1
}
