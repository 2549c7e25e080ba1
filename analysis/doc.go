// Package analysis implements the miscellaneous graph-analysis
// compositions over core: triangle count, Jaccard similarity, maximal
// independent set, and label propagation. None carries a novel
// invariant beyond what the customization-point contract already
// guarantees; each is a standard greedy formulation built over the core
// enumeration interfaces (label propagation repeats its sweep for up to
// maxIterations rounds).
package analysis
