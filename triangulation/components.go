// SPDX-License-Identifier: MIT

package triangulation

// queueItem pairs a simplex index with its BFS depth.
type queueItem struct {
	index int
	depth int
}

// walker holds the mutable state of one component search over the dual graph.
type walker struct {
	tri     *Triangulation
	queue   []queueItem
	visited []bool
	order   []int
}

// Components returns the simplex indices of each connected component. Each
// component is listed in BFS order from its lowest-index simplex, and
// components are ordered by that lowest index.
//
// Complexity: O(n·d).
func (t *Triangulation) Components() [][]int {
	w := &walker{
		tri:     t,
		queue:   make([]queueItem, 0, len(t.simplices)),
		visited: make([]bool, len(t.simplices)),
	}

	var out [][]int
	for i := range t.simplices {
		if w.visited[i] {
			continue
		}
		w.order = nil
		w.enqueue(i, 0)
		w.loop()
		out = append(out, w.order)
	}

	return out
}

// CountComponents is len(Components()).
func (t *Triangulation) CountComponents() int { return len(t.Components()) }

func (w *walker) enqueue(i, depth int) {
	w.visited[i] = true
	w.queue = append(w.queue, queueItem{index: i, depth: depth})
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// loop drains the queue, recording visit order and enqueuing unseen neighbours
// in facet order.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.order = append(w.order, item.index)
		s := w.tri.simplices[item.index]
		for f := 0; f <= w.tri.dim; f++ {
			if nbr := s.adj[f]; nbr != nil && !w.visited[nbr.index] {
				w.enqueue(nbr.index, item.depth+1)
			}
		}
	}
}
