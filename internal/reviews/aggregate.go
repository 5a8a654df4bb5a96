// Package reviews computes aggregate stats over review ratings.
package reviews

// Stats is the count/average/histogram triple shown on product pages.
type Stats struct {
	Total        int         `json:"total"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
}

// Aggregate reduces a rating list to Stats. Ratings outside 1..5 are
// ignored; the input boundary rejects them before they are stored, so
// seeing one here means bad legacy data, not a caller bug. An empty
// list yields average 0.
func Aggregate(ratings []int) Stats {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	total := 0
	sum := 0
	for _, r := range ratings {
		if r < 1 || r > 5 {
			continue
		}
		dist[r]++
		total++
		sum += r
	}
	avg := 0.0
	if total > 0 {
		avg = float64(sum) / float64(total)
	}
	return Stats{Total: total, Average: avg, Distribution: dist}
}
