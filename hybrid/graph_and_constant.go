// SPDX-License-Identifier: MIT

package hybrid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvhybrid/linear"
)

// GraphAndConstant is one discrete hypothesis' continuous cost: a Gaussian
// linear system and the log of its normalization constant. The cost it
// represents is graph.Error(x) + constant.
//
// It is an immutable value; combining two of them is the job of the tree
// layer (see CombineGraphs).
type GraphAndConstant struct {
	graph    linear.GaussianFactorGraph
	constant float64
}

// NewGraphAndConstant pairs a linear system with its constant.
func NewGraphAndConstant(graph linear.GaussianFactorGraph, constant float64) GraphAndConstant {
	return GraphAndConstant{graph: graph, constant: constant}
}

// Graph returns the linear system.
func (gc GraphAndConstant) Graph() linear.GaussianFactorGraph { return gc.graph }

// Constant returns the additive constant.
func (gc GraphAndConstant) Constant() float64 { return gc.constant }

// Equals reports structural graph equality within tol and
// |constant − other.constant| ≤ tol. It is reflexive for every tol ≥ 0.
func (gc GraphAndConstant) Equals(other GraphAndConstant, tol float64) bool {
	return gc.graph.Equals(other.graph, tol) && math.Abs(gc.constant-other.constant) <= tol
}

// Error evaluates graph.Error(x) + constant.
func (gc GraphAndConstant) Error(x linear.VectorValues) (float64, error) {
	e, err := gc.graph.Error(x)
	if err != nil {
		return 0, err
	}

	return e + gc.constant, nil
}

// String prints the graph followed by "Constant: c".
func (gc GraphAndConstant) String() string {
	return fmt.Sprintf("Graph: %sConstant: %g\n", gc.graph, gc.constant)
}
