// Package generate builds synthetic antenna graphs for fixtures, benchmarks
// and the CLI generate command.
//
// Constructors:
//
//	Grid(rows, cols)  - Bernoulli trial per cell; hits get a random frequency.
//	Complete(n, f)    - n antennas of one frequency on row 0 (the clique K_n).
//
// Determinism:
//
//	Cells are visited row by row, column by column, which is also the order
//	gridgraph.Parse inserts them. Rendering a generated graph and parsing the
//	text back therefore rebuilds it vertex for vertex. Randomness comes only
//	from the *rand.Rand supplied via WithSeed or WithRand; the default is no
//	randomness at all, and constructors that need it fail with
//	ErrNeedRandSource.
//
// Errors:
//
//	ErrTooFewCells        - rows, cols or n below 1.
//	ErrInvalidDensity     - density outside [0,1].
//	ErrInvalidFrequencies - empty set or a reserved frequency byte.
//	ErrNeedRandSource     - a stochastic choice without an RNG.
package generate
