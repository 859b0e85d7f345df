package main

import (
	"fmt"
	"sort"

	"github.com/emovoice/emovoice/internal/synth"
)

func cacheCmd(args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "list":
			cacheList()
			return
		case "clear":
			cacheClear()
			return
		}
	}
	fatal("Usage: emovoice cache [list|clear]")
}

func cacheList() {
	c, err := synth.OpenCache()
	if err != nil {
		fatal("%v", err)
	}
	if len(c.Entries) == 0 {
		fmt.Println("Cache is empty.")
		return
	}

	entries := make([]synth.CacheEntry, 0, len(c.Entries))
	var total int64
	for _, e := range c.Entries {
		entries = append(entries, e)
		total += e.Size
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	for _, e := range entries {
		fmt.Printf("%s  %-10s  %-7s  %6d KB  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Emotion, e.Backend, e.Size/1024, truncate(e.Text, 50))
	}
	fmt.Printf("\n%d entries, %d KB. Directory: %s\n", len(entries), total/1024, c.Dir)
}

func cacheClear() {
	c, err := synth.OpenCache()
	if err != nil {
		fatal("%v", err)
	}
	count, err := c.Clear()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Removed %d cached files.\n", count)
}
