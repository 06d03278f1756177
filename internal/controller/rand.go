package controller

import "math/rand/v2"

// mathSampler is the default Sampler, backed by the shared math/rand source.
type mathSampler struct{}

func (mathSampler) Float64() float64 { return rand.Float64() }
func (mathSampler) IntN(n int) int   { return rand.IntN(n) }
