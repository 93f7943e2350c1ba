package domain

import "math"

// Review is a guest rating between 1 and 5 stars.
type Review struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewSummary aggregates the ratings shown in the reviews dialog.
type ReviewSummary struct {
	Total   int         `json:"total"`
	Average float64     `json:"average"`
	Counts  map[int]int `json:"counts"`
	Reviews []Review    `json:"reviews"`
}

// Summarize computes the average (one decimal) and per-star counts. Ratings outside
// 1..5 are ignored.
func Summarize(reviews []Review) ReviewSummary {
	summary := ReviewSummary{Counts: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	sum := 0
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		summary.Counts[r.Rating]++
		summary.Reviews = append(summary.Reviews, r)
		sum += r.Rating
	}
	summary.Total = len(summary.Reviews)
	if summary.Total > 0 {
		summary.Average = math.Round(float64(sum)/float64(summary.Total)*10) / 10
	}
	return summary
}

func DefaultReviews() []Review {
	return []Review{
		{ID: 1, Name: "Sarah Johnson", Date: "2023-10-15", Rating: 5, Comment: "Absolutely amazing experience! The food was exquisite and the service was impeccable. I highly recommend the Truffle Risotto."},
		{ID: 2, Name: "Michael Chen", Date: "2023-09-28", Rating: 4, Comment: "Great atmosphere and delicious food. The Herb-Crusted Salmon was cooked to perfection. Only reason for 4 stars is that we had to wait a bit for our table."},
		{ID: 3, Name: "Elena Rodriguez", Date: "2023-10-05", Rating: 5, Comment: "The best dining experience I've had in months! Every dish was beautifully presented and tasted incredible. The staff was very attentive and knowledgeable."},
		{ID: 4, Name: "David Williams", Date: "2023-09-20", Rating: 5, Comment: "Celebrated our anniversary here and couldn't have chosen a better place. The Braised Short Ribs were outstanding and the wine pairing suggestions were spot on."},
		{ID: 5, Name: "Amanda Taylor", Date: "2023-10-10", Rating: 4, Comment: "Lovely ambiance and great food. The dessert menu is a must-try! Would have given 5 stars but the main course took a while to arrive."},
	}
}
