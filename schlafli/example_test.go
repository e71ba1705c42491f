package schlafli_test

import (
	"fmt"

	"github.com/katalvlaran/dimking/schlafli"
)

// ExampleGenerate builds the 5-cell.
func ExampleGenerate() {
	sym, _ := schlafli.ParseSymbol("3 3 3")
	st, _ := schlafli.Generate(sym)
	fmt.Println(sym, st.Counts())
	// Output:
	// {3,3,3} [5 10 10 5]
}
