package incrementor_test

import (
	"fmt"

	"github.com/ml-math/incrementor"
)

func ExampleMeanIncrementor() {
	// Initialize the incrementor.
	meanInc := incrementor.NewMeanIncrementor[float32]()

	// Add some values.
	meanInc.Update(0)
	meanInc.Update(1)

	// Get the mean.
	fmt.Println(meanInc.GetMean())
	// Output: 0.5
}

func ExampleVarianceIncrementor() {
	// Initialize the incrementor.
	varianceInc := incrementor.NewVarianceIncrementor[float32]()

	// Add some values.
	varianceInc.Update(0)
	varianceInc.Update(1)

	// Get the variance.
	fmt.Println(varianceInc.GetVariance())

	// Add another value and get the updated variance.
	varianceInc.Update(2)
	fmt.Println(varianceInc.GetVariance())
	// Output:
	// 0.5
	// 1
}
