package main

import (
	"fmt"

	"rootmean"
)

// The worked example: four usable values, two missing entries, and one
// negative reading that must be filtered out.
var readings = []rootmean.Sample{
	rootmean.Present(1.0),
	{},
	rootmean.Present(2.5),
	rootmean.Present(4.0),
	rootmean.Present(-3.0),
	{},
	rootmean.Present(3.5),
}

func main() {
	fmt.Printf("Average: %v\n", rootmean.MeanRoot(readings))
}
