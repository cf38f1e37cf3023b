// Package ghsmst computes minimum spanning trees the distributed way: every
// vertex of a weighted graph becomes an independent agent running the
// Gallager–Humblet–Spira (GHS) protocol, and an emulated asynchronous
// network with an adversarial random scheduler carries their messages.
//
// What is inside?
//
//	edgelist/      — graph container: edges, canonical order, text IO, connectivity
//	prim_kruskal/  — centralized oracles (Kruskal, Prim) with the same tie order
//	emulator/      — mailboxes, legality checks, randomized scheduler
//	ghs/           — the per-node GHS state machine, Run and Verify
//	builder/       — seeded generators: path, star, cycle, complete, random
//	trace/         — JSON event traces of a run
//	suite/         — TOML batches of GHS-versus-Kruskal checks
//	config/        — CLI configuration and logrus setup
//	cmd/ghsmst/    — the command line: run, generate, suite
//
// Quick start:
//
//	g, _ := edgelist.Read(os.Stdin)
//	ok, err := ghs.Verify(g, ghs.WithSeed(1)) // true when GHS == Kruskal
//
// Ties between equal weights are broken by endpoint ids everywhere, so the
// tree is unique and independent of the schedule.
package ghsmst
