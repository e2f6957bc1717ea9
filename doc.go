// Package socialnet is an in-memory social graph: users, undirected
// connections, and three questions you can ask of them.
//
// What is inside?
//
//	core/       - thread-safe Graph of users and adjacency lists
//	tree/       - depth-bounded connection tree (default depth 2)
//	suggest/    - friend-of-friend suggestions ranked by mutual connections
//	influence/  - users ranked by number of connections
//	loader/     - CSV rows (id,name,handle[,neighbor...]) replayed into a Graph
//	menu/       - interactive prompt loop and single-command dispatch
//	config/     - YAML file + SOCIALNET_* environment settings
//	logging/    - zap logger per environment
//	cmd/socialnet - the CLI
//
// Quick start:
//
//	g := core.NewGraph()
//	_, err := loader.LoadFile(ctx, g, "users.csv")
//	res, err := suggest.Suggest(g, id, suggest.WithLimit(5))
//	_ = suggest.Render(os.Stdout, g, res)
//
// Every ranking breaks ties by ascending user id, so output is
// deterministic for a given input file.
package socialnet
