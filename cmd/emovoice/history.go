package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emovoice/emovoice/internal/history"
)

func historyCmd(args []string, opts runOpts) {
	if len(args) > 0 {
		switch args[0] {
		case "stats":
			historyStats(args[1:])
			return
		case "clean":
			historyClean(args[1:])
			return
		case "clear":
			historyClear()
			return
		}
	}
	historyShow(args)
}

func openStore() *history.SQLiteStore {
	s, err := history.NewSQLiteStore(history.DBPath())
	if err != nil {
		fatal("opening history: %v", err)
	}
	return s
}

// parseDays reads an optional [days|all] argument; 0 means all time.
func parseDays(args []string) int {
	if len(args) == 0 || args[0] == "all" {
		return 0
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		fatal("days must be a positive integer or \"all\"")
	}
	return n
}

func historyShow(args []string) {
	days := parseDays(args)

	s := openStore()
	defer s.Close()

	entries, err := s.Entries(days)
	if err != nil {
		fatal("%v", err)
	}
	if len(entries) == 0 {
		if days > 0 {
			fmt.Printf("No syntheses in the last %d days.\n", days)
		} else {
			fmt.Println("No syntheses recorded yet.")
		}
		return
	}

	for _, e := range entries {
		ts := e.Timestamp.Format("2006-01-02 15:04:05")
		cached := ""
		if e.Cached {
			cached = "  (cached)"
		}
		fmt.Printf("%s  %-10s  intensity %.2f  %s%s\n", ts, e.Emotion, e.Intensity, truncate(e.Text, 60), cached)
	}
	fmt.Printf("\n%d syntheses. Database: %s\n", len(entries), s.Path())
}

func historyStats(args []string) {
	days := parseDays(args)

	s := openStore()
	defer s.Close()

	entries, err := s.Entries(days)
	if err != nil {
		fatal("%v", err)
	}
	if len(entries) == 0 {
		fmt.Println("No syntheses recorded yet.")
		return
	}

	var out strings.Builder
	renderStatsTable(&out, history.Summarize(entries), len(entries), days)
	fmt.Print(out.String())
}

// renderStatsTable writes the per-emotion breakdown.
func renderStatsTable(w *strings.Builder, groups []history.EmotionCounts, total, days int) {
	if days > 0 {
		fmt.Fprintf(w, "Emotion statistics (last %d days, %d total)\n\n", days, total)
	} else {
		fmt.Fprintf(w, "Emotion statistics (all time, %d total)\n\n", total)
	}

	fmt.Fprintf(w, "  %-12s  %6s  %5s  %13s  %6s\n", "Emotion", "Count", "%", "Avg intensity", "Cached")
	for _, g := range groups {
		pct := float64(g.Count) / float64(total) * 100
		fmt.Fprintf(w, "  %-12s  %6d  %4.0f%%  %13.2f  %6d\n",
			g.Emotion, g.Count, pct, g.AvgIntensity, g.Cached)
	}
}

func historyClean(args []string) {
	if len(args) < 1 {
		fatal("history clean requires a day count\nUsage: emovoice history clean <days>")
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		fatal("days must be a positive integer")
	}

	s := openStore()
	defer s.Close()

	removed, err := s.Clean(days)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Removed %d entries older than %d days.\n", removed, days)
}

func historyClear() {
	s := openStore()
	defer s.Close()

	if err := s.Clear(); err != nil {
		fatal("%v", err)
	}
	fmt.Println("History cleared.")
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
