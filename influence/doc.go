// Package influence ranks users of a core.Graph by degree.
//
// Degree is the raw number of adjacency entries, used as a proxy for
// connectivity. Ranking is degree descending with user ID ascending as the
// explicit tie-break.
package influence
