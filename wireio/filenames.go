package wireio

import "fmt"

// CostFilename mirrors the reference's sprintf(cost_filename, "cost_%s_%d",
// input_filename, num_of_threads).
func CostFilename(inputFilename string, numThreads int) string {
	return fmt.Sprintf("cost_%s_%d", inputFilename, numThreads)
}

// WiresFilename mirrors the reference's sprintf(wire_filename,
// "output_%s_%d", input_filename, num_of_threads).
func WiresFilename(inputFilename string, numThreads int) string {
	return fmt.Sprintf("output_%s_%d", inputFilename, numThreads)
}
