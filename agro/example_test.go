// Package agro_test provides runnable examples for the validation catalog.
// Each example doubles as documentation via "go test -run Example".
package agro_test

import (
	"fmt"

	"github.com/cropsolve/cropsolve/agro"
)

// ExampleValidate demonstrates the two-tier report on a problem whose area
// bounds contradict each other: the crop asks for at least 50 ha but caps
// itself at 10, and the farm only has 30 ha of land in the first place.
func ExampleValidate() {
	// 1) Start from a crop with the reference defaults, then tighten its
	//    area bounds into an impossible range.
	wheat := agro.NewCrop("Wheat", 1200, 4000, 25, 700, 120, agro.SeasonFall, agro.SoilLoamy)
	wheat.MinArea = 50
	wheat.MaxArea = agro.Limit(10)

	// 2) Assemble the problem: one 30 ha loamy parcel, generous budgets.
	p := agro.NewProblem("bounds-demo",
		[]agro.Crop{wheat},
		[]agro.LandParcel{agro.NewParcel("P1", 30, agro.SoilLoamy)},
		agro.NewResources(100000, 50000, 5000))

	// 3) Run the full rule catalog. Errors block solving, warnings do not.
	report := agro.Validate(p)
	for _, e := range report.Errors {
		fmt.Println("error:", e)
	}
	fmt.Println("ok:", report.OK())

	// Output:
	// error: Crop Wheat has max_area < min_area
	// error: Sum of minimum crop areas (50 ha) exceeds total available land (30 ha)
	// ok: false
}
