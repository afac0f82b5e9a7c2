package diffexpr

// Presentation contract with the external volcano-plot collaborator: fixed
// category colors and dashed threshold lines. Not load-bearing for analysis.
var CategoryColors = map[Category]string{
	CategoryUpregulated:    "red",
	CategoryDownregulated:  "blue",
	CategoryNotSignificant: "grey",
}

const (
	FoldChangeLine = 1.0  // vertical dashed lines at log2FC = +/-1
	PValueLine     = 0.05 // horizontal dashed line at p = 0.05
)

// VolcanoPoint is one gene as the plotting collaborator consumes it.
// NegLog10P is NaN for genes whose test was undefined; the collaborator
// omits or special-cases such points.
type VolcanoPoint struct {
	Gene      string   `json:"gene"`
	Log2FC    float64  `json:"log2_fc"`
	NegLog10P float64  `json:"neg_log10_p"`
	Category  Category `json:"category"`
	Color     string   `json:"color"`
}

// VolcanoPoints projects a classified table onto the plotting contract
func VolcanoPoints(t *Table) []VolcanoPoint {
	points := make([]VolcanoPoint, len(t.Rows))
	for i, r := range t.Rows {
		points[i] = VolcanoPoint{
			Gene:      r.Gene,
			Log2FC:    r.Log2FC,
			NegLog10P: r.NegLog10P(),
			Category:  r.Category,
			Color:     CategoryColors[r.Category],
		}
	}
	return points
}
