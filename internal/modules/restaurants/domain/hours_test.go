package domain

import (
	"testing"
	"time"
)

func TestOpeningHoursToday(t *testing.T) {
	hours := DefaultHours()

	// 2026-10-16 is a Friday.
	entry, open := hours.Today(time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC))
	if !open {
		t.Fatal("expected the restaurant to open on fridays")
	}
	if entry.Day != "Friday" || entry.Hours != "11:00 AM - 11:00 PM" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	delete(hours, Monday)
	if _, open := hours.Today(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)); open {
		t.Fatal("expected closed on a day without hours")
	}
}

func TestOpeningHoursTable(t *testing.T) {
	table := DefaultHours().Table()
	if len(table) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(table))
	}
	if table[0].Day != "Monday" || table[6].Day != "Sunday" {
		t.Fatalf("unexpected ordering %+v", table)
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(DefaultReviews())
	if summary.Total != 5 {
		t.Fatalf("expected 5 reviews, got %d", summary.Total)
	}
	if summary.Average != 4.6 {
		t.Fatalf("expected average 4.6, got %v", summary.Average)
	}
	if summary.Counts[5] != 3 || summary.Counts[4] != 2 || summary.Counts[1] != 0 {
		t.Fatalf("unexpected counts %v", summary.Counts)
	}

	empty := Summarize([]Review{{ID: 9, Rating: 7}})
	if empty.Total != 0 || empty.Average != 0 {
		t.Fatalf("expected out-of-range ratings to be ignored, got %+v", empty)
	}
}
