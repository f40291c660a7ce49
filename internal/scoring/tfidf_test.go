package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTFIDFWeighting(t *testing.T) {
	docs := [][]string{
		{"go", "backend", "go"},
		{"go", "frontend"},
		{"python", "backend"},
	}
	m := NewTFIDF(docs)

	// idf = ln(1 + N/(1+df))
	assert.InDelta(t, math.Log(1+3.0/3.0), m.idf["go"], 1e-12)
	assert.InDelta(t, math.Log(1+3.0/2.0), m.idf["python"], 1e-12)

	// rarer terms weigh more
	assert.Greater(t, m.idf["python"], m.idf["go"])
}

func TestTermFrequency(t *testing.T) {
	tf := TermFrequency([]string{"go", "go", "backend"})
	assert.InDelta(t, 2.0/3.0, tf["go"], 1e-12)
	assert.InDelta(t, 1.0/3.0, tf["backend"], 1e-12)

	assert.Empty(t, TermFrequency(nil))
}

func TestVectorUnseenTermsZero(t *testing.T) {
	m := NewTFIDF([][]string{{"go"}})
	v := m.Vector([]string{"go", "cobol"})
	assert.Greater(t, v["go"], 0.0)
	assert.Zero(t, v["cobol"])
}

func TestCosine(t *testing.T) {
	a := map[string]float64{"go": 1, "backend": 2}
	b := map[string]float64{"go": 2, "backend": 4}
	c := map[string]float64{"python": 1}

	assert.InDelta(t, 1.0, Cosine(a, b), 1e-12)
	assert.InDelta(t, 1.0, Cosine(a, a), 1e-12)
	assert.Equal(t, Cosine(a, b), Cosine(b, a))
	assert.Zero(t, Cosine(a, c))
	assert.Zero(t, Cosine(a, map[string]float64{}))
	assert.Zero(t, Cosine(nil, nil))
}

func TestCosineDense(t *testing.T) {
	a := []float32{1, 0, 1}
	b := []float32{2, 0, 2}

	assert.InDelta(t, 1.0, CosineDense(a, b), 1e-6)
	assert.InDelta(t, 1.0, CosineDense(a, a), 1e-6)
	assert.Zero(t, CosineDense(a, []float32{0, 1}), "length mismatch")
	assert.Zero(t, CosineDense(a, []float32{0, 0, 0}), "zero norm")
	assert.Zero(t, CosineDense(nil, nil))
}
