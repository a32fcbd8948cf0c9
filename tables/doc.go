// Package tables generates cosine tables of classical unit-vector
// configurations as ready-to-realize problems.
//
// 🚀 What is inside?
//
//	Families are deterministic generators composed through Build:
//		• Simplex(n)        n vertices of the regular simplex, pairwise -1/(n-1)
//		• CrossPolytope(d)  ±e_1..±e_d, cosines 0 and -1
//		• Hypercube(d)      the 2^d vertices (±1,..,±1)/√d
//		• Equiangular(n, c) n vectors pairwise at cosine c
//		• Orthonormal(n)    the standard basis
//		• Platonic(name)    solids whose vertex cosines are rational
//
// Every table stores each distinct cosine once and maps vector pairs to it
// through index rows, the layout eigenspace.Vectors consumes.
//
// ⚙️ Usage:
//
//	t, _ := tables.Build(tables.Hypercube(3))
//	es, _ := t.Engine()
//	m, _ := es.Vectors(t.Index)
//
// Determinism: equal inputs and options produce identical tables.
package tables
