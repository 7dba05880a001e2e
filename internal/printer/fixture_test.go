package printer_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestPrinterFixtures snapshot-tests the full lex/parse/print pipeline over
// a handful of small programs exercising structures, datatypes, and
// multi-clause functions together, the way a single fixture test rarely
// does on its own.
func TestPrinterFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "StructureWithDatatype",
			src: `structure Shapes = struct
  datatype shape = Circle of real | Square of real
  fun area (Circle r) = 3.14 * r * r
    | area (Square s) = s * s
end`,
		},
		{
			name: "FunWithLet",
			src: `fun quadratic a b c =
  let
    val disc = b * b - 4.0 * a * c
  in
    (~b + Math.sqrt disc) / (2.0 * a)
  end`,
		},
		{
			name: "SignatureAndFunctor",
			src: `signature ORDERED = sig
  type t
  val compare : t * t -> order
end

functor SetFn (O : ORDERED) = struct
  type elem = O.t
end`,
		},
	}

	for _, fx := range fixtures {
		out := format(t, fx.src)
		snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", fx.name), out)
	}
}
