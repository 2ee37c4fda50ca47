// Package solver finds shortest move sequences for the worm.
//
// Solve materialises the finite graph of legal positions on a board: a
// Standing vertex for every valid cell, a Flat vertex for every ordered
// pair of adjacent valid cells, and a directed edge for every move that
// keeps the worm on the board. It then searches that graph from
// Standing(start) to Standing(goal) with either dijkstra (UniformCost, the
// default) or bfs (BreadthFirst). Both return a minimum-move path.
//
// The graph is rebuilt on every call and never shared, so concurrent calls
// on the same board are safe.
//
//	res, err := solver.Solve(b, b.Start())
//	if err == nil && res.Found {
//		dirs, _ := solver.Directions(res.Path.Forward())
//		fmt.Println(dirs)
//	}
package solver
