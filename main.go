// Released under an MIT license. See LICENSE.

/*
Frac is a calculator for whole numbers, fractions and mixed fractions.

Each line starts with a '?' and is evaluated strictly from left to right:

	? 1/2 + 1/3
	= 5/6
	? 3_1/2 - 1_1/2
	= 2
	? 1 + 2 * 3
	= 9

Results are printed in lowest terms, with any whole part separated from
the fraction by an underscore. By default, the first invalid line ends
the session. Run frac -h for the available options.
*/
package main

import (
	"os"

	"github.com/michaelmacinnis/frac/internal/system/options"
	"github.com/michaelmacinnis/frac/internal/ui"
)

func main() {
	options.Parse(os.Args[1:])

	os.Exit(ui.Run())
}
