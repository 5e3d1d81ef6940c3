// Package pipeline runs one clique-discovery pass over a set of feature
// series:
//
//	series ─► BuildNodes ─► FilterNodes ─► BuildEdges ─► FilterEdges
//	       ─► adjacency.New ─► clique.Enumerate ─► scoring.FindBest
//
// The pass is sequential and synchronous unless Config.Workers asks the
// clique search to fan out. Any collaborator error aborts the run; there is
// no partial result. Finding no candidate at all is not an error: the Result
// reports Found == false.
package pipeline
