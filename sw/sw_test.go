package sw_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/seq"
	"github.com/katalvlaran/seqalign/sw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const gap = seq.DefaultGap

var identity = scoring.Identity[rune](1, -1)

// TestAlignStrings_Reference pins exact outputs, spans included.
func TestAlignStrings_Reference(t *testing.T) {
	cases := []struct {
		name         string
		a, b         string
		score        scoring.Func[rune]
		wantA, wantB string
		wantScore    float64
		aStart, aEnd int
		bStart, bEnd int
	}{
		{"BrownCat", "the brown cat", "these brownies", identity, "e brown", "e brown", 7, 2, 9, 4, 11},
		{"Gattaca", "GATTACA", "GCATGCU", scoring.Linear[rune](2, -1, -2, gap), "AT", "AT", 4, 1, 3, 2, 4},
		{"Kitten", "kitten", "sitting", identity, "itt", "itt", 3, 1, 4, 1, 4},
		{"WithIndel", "TGTTACGG", "GGTTGACTA", scoring.Linear[rune](3, -3, -2, gap), "GTT-AC", "GTTGAC", 13, 1, 6, 1, 7},
		{"Identical", "AAA", "AAA", identity, "AAA", "AAA", 3, 0, 3, 0, 3},
		{"Repeats", "ACACACTA", "AGCACACA", scoring.Linear[rune](2, -1, -1, gap), "A-CACACTA", "AGCACAC-A", 12, 0, 8, 0, 8},
		{"NothingShared", "abc", "xyz", identity, "", "", 0, 0, 0, 0, 0},
		{"FirstEmpty", "", "abc", identity, "", "", 0, 0, 0, 0, 0},
		{"BothEmpty", "", "", identity, "", "", 0, 0, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := sw.Align(seq.Runes(tc.a), seq.Runes(tc.b), gap, tc.score)
			require.NoError(t, err)
			assert.Equal(t, tc.wantA, seq.String(res.A))
			assert.Equal(t, tc.wantB, seq.String(res.B))
			assert.Equal(t, tc.wantScore, res.Score)
			assert.Equal(t, [4]int{tc.aStart, tc.aEnd, tc.bStart, tc.bEnd},
				[4]int{res.AStart, res.AEnd, res.BStart, res.BEnd})

			a1, a2, score, err := sw.AlignStrings(tc.a, tc.b, tc.score)
			require.NoError(t, err)
			assert.Equal(t, tc.wantA, a1)
			assert.Equal(t, tc.wantB, a2)
			assert.Equal(t, tc.wantScore, score)
		})
	}
}

// TestAlign_Tokens finds the shared phrase in two token lists.
func TestAlign_Tokens(t *testing.T) {
	const tokGap = "<gap>"
	a := []string{"the", "quick", "brown", "fox", "jumps"}
	b := []string{"the", "brown", "fox", "leaps"}

	res, err := sw.Align(a, b, tokGap, scoring.Linear[string](2, -1, -1, tokGap))
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, res.A)
	assert.Equal(t, []string{"the", tokGap, "brown", "fox"}, res.B)
	assert.Equal(t, 5.0, res.Score)
	assert.Equal(t, a[res.AStart:res.AEnd], seq.Ungap(res.A, tokGap))
	assert.Equal(t, b[res.BStart:res.BEnd], seq.Ungap(res.B, tokGap))
}

// TestAlign_ZeroRewardIsEmpty checks that a tie with zero stops the alignment:
// matches worth exactly 0 never start a local alignment.
func TestAlign_ZeroRewardIsEmpty(t *testing.T) {
	res, err := sw.Align(seq.Runes("ACGT"), seq.Runes("ACGT"), gap, scoring.Linear[rune](0, -1, -1, gap))
	require.NoError(t, err)
	assert.Empty(t, res.A)
	assert.Empty(t, res.B)
	assert.Zero(t, res.Score)
}

// TestAlign_FirstMaximumWins checks that of two equal-scoring regions the
// one met first in row-major order is reported.
func TestAlign_FirstMaximumWins(t *testing.T) {
	res, err := sw.Align(seq.Runes("xxABxxCDxx"), seq.Runes("CDyyAB"), gap, scoring.Linear[rune](1, -5, -5, gap))
	require.NoError(t, err)
	assert.Equal(t, "AB", seq.String(res.A))
	assert.Equal(t, 2.0, res.Score)
	assert.Equal(t, 2, res.AStart, "AB ends on row 4, which is filled before CD on row 8")
}

// TestAlign_GapInInput rejects the reserved marker in either input.
func TestAlign_GapInInput(t *testing.T) {
	_, _, _, err := sw.AlignStrings("AC-GT", "ACGT", identity)
	assert.ErrorIs(t, err, seq.ErrGapInInput)
	_, _, _, err = sw.AlignStrings("ACGT", "A-", identity)
	assert.ErrorIs(t, err, seq.ErrGapInInput)

	_, _, _, err = sw.AlignStrings("AC-GT", "ACGT", identity, sw.WithoutValidation())
	assert.NoError(t, err)
}

// TestAlign_NilScoring returns ErrNilScoring instead of panicking.
func TestAlign_NilScoring(t *testing.T) {
	_, err := sw.Align(seq.Runes("A"), seq.Runes("A"), gap, nil)
	assert.ErrorIs(t, err, sw.ErrNilScoring)
}

// TestAlign_Logger verifies that Debug records reach a supplied logger.
func TestAlign_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, _, err := sw.AlignStrings("ACGT", "CG", identity, sw.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sw: matrix filled")
	assert.Contains(t, buf.String(), "sw: traceback done")
	assert.Panics(t, func() { sw.WithLogger(nil) })
}

// TestAlign_SubstitutionTable runs a table-driven scorer through the engine.
func TestAlign_SubstitutionTable(t *testing.T) {
	table := mat.NewDense(4, 4, []float64{
		5, -1, -4, -4,
		-1, 5, -4, -4,
		-4, -4, 5, -1,
		-4, -4, -1, 5,
	})
	dna, err := scoring.Substitution([]rune("AGCT"), table, -3, gap)
	require.NoError(t, err)

	a, b := seq.Runes("TTGACCATGGA"), seq.Runes("CCGATCAGTGG")
	res, err := sw.Align(a, b, gap, dna)
	require.NoError(t, err)
	assert.Equal(t, "GACCA-TGG", string(res.A))
	assert.Equal(t, "GATCAGTGG", string(res.B))
	assert.Equal(t, 31.0, res.Score)
	assert.Equal(t, string(a[res.AStart:res.AEnd]), string(seq.Ungap(res.A, gap)))
	assert.Equal(t, string(b[res.BStart:res.BEnd]), string(seq.Ungap(res.B, gap)))

	rescored, err := scoring.Rescore(res.A, res.B, dna)
	require.NoError(t, err)
	assert.Equal(t, res.Score, rescored)
}

// TestDefaultOptions pins the zero-configuration settings.
func TestDefaultOptions(t *testing.T) {
	o := sw.DefaultOptions()
	assert.NotNil(t, o.Logger)
	assert.True(t, o.Validate)
}

// TestDirection_String covers every tag name.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "None", sw.None.String())
	assert.Equal(t, "Diagonal", sw.Diagonal.String())
	assert.Equal(t, "Up", sw.Up.String())
	assert.Equal(t, "Left", sw.Left.String())
	assert.Equal(t, "Direction(?)", sw.Direction(9).String())
}

// TestAlign_Properties checks the local-alignment invariants on random input.
func TestAlign_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	scorers := []struct {
		name string
		f    scoring.Func[rune]
	}{
		{"Identity", identity},
		{"Linear", scoring.Linear[rune](2, -1, -2, gap)},
		{"Fractional", scoring.Linear[rune](0.7, -0.3, -0.45, gap)},
	}
	for _, sc := range scorers {
		f := sc.f
		t.Run(sc.name, func(t *testing.T) {
			for k := 0; k < 40; k++ {
				a, b := randomDNA(rng, rng.Intn(16)), randomDNA(rng, rng.Intn(16))

				res, err := sw.Align(a, b, gap, f)
				require.NoError(t, err)

				require.NoError(t, seq.CheckColumns(res.A, res.B, gap))
				// Ungapped rows are the reported contiguous substrings.
				assert.Equal(t, string(a[res.AStart:res.AEnd]), string(seq.Ungap(res.A, gap)))
				assert.Equal(t, string(b[res.BStart:res.BEnd]), string(seq.Ungap(res.B, gap)))
				assert.True(t, seq.Contains(a, seq.Ungap(res.A, gap)))
				assert.True(t, seq.Contains(b, seq.Ungap(res.B, gap)))
				// Score is non-negative and reproduced by re-scoring.
				assert.GreaterOrEqual(t, res.Score, 0.0)
				rescored, err := scoring.Rescore(res.A, res.B, f)
				require.NoError(t, err)
				assert.InDelta(t, res.Score, rescored, 1e-9)
				// A local optimum is never below the global one.
				global, err := nw.Score(a, b, gap, f)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, res.Score+1e-9, global)
			}
		})
	}
}

// TestAlign_Monotonic raises the match reward and expects a score that does not drop.
func TestAlign_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for k := 0; k < 30; k++ {
		a, b := randomDNA(rng, 1+rng.Intn(12)), randomDNA(rng, 1+rng.Intn(12))
		prev := 0.0
		for _, reward := range []float64{0.5, 1, 2, 4} {
			res, err := sw.Align(a, b, gap, scoring.Linear[rune](reward, -1, -1, gap))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Score, prev, "reward %v on %q vs %q", reward, string(a), string(b))
			prev = res.Score
		}
	}
}

func randomDNA(rng *rand.Rand, n int) []rune {
	const alphabet = "ACGT"
	out := make([]rune, n)
	for i := range out {
		out[i] = rune(alphabet[rng.Intn(len(alphabet))])
	}

	return out
}
