package timeline

// Edge is a directed dependency connector from the end of the
// prerequisite's bar to the start of the dependent's bar. Rows are
// indexes into the item order; renderers draw the segment at each
// row's vertical midpoint with the arrow toward the dependent.
type Edge struct {
	FromID  string
	ToID    string
	FromRow int
	ToRow   int
	StartX  float64
	EndX    float64
}

// RouteEdges resolves each item's dependency references against the
// computed bars. Edges whose endpoints are dateless are skipped
// silently, and edges with no visual slack (the dependent starts
// before or exactly when the prerequisite ends) are suppressed:
// dependency violations are common in hand-entered data and must
// degrade to "no edge", never to a backward connector.
// StartX < EndX holds for every returned edge.
func RouteEdges(items []Item, bars map[string]*Bar, show bool) []Edge {
	if !show {
		return nil
	}

	rowIndex := make(map[string]int, len(items))
	for i, it := range items {
		rowIndex[it.ID] = i
	}

	var edges []Edge
	for i, it := range items {
		toBar := bars[it.ID]
		if toBar == nil {
			continue
		}
		for _, preID := range it.DependsOn {
			fromBar := bars[preID]
			if fromBar == nil {
				continue
			}
			startX := fromBar.Left + fromBar.Width
			endX := toBar.Left
			if startX >= endX {
				continue
			}
			edges = append(edges, Edge{
				FromID:  preID,
				ToID:    it.ID,
				FromRow: rowIndex[preID],
				ToRow:   i,
				StartX:  startX,
				EndX:    endX,
			})
		}
	}
	return edges
}
