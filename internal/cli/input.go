// Package cli handles cmd line input and spelling lookups for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Aquaduckd/pinchordlookup/pkg/layout"
	"github.com/Aquaduckd/pinchordlookup/pkg/spell"
)

// InputHandler reads target words from stdin and prints every spelling
// the engine finds for them, up to a limit per word.
type InputHandler struct {
	loader       *layout.Loader
	version      string
	limit        int
	index        *spell.Index
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(loader *layout.Loader, version string, limit int) *InputHandler {
	return &InputHandler{
		loader:  loader,
		version: version,
		limit:   limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and looks
// up the trimmed, lower-cased word (the engine itself never normalizes).
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	tables, err := h.loader.Tables(h.version)
	if err != nil {
		return err
	}
	h.index = spell.NewIndex(tables)

	log.Print("pinchord CLI")
	log.Printf("layout version: %s", h.version)
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to see its spellings (Ctrl+C to exit):")

	for {
		log.Print("> ")
		target, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		target = strings.ToLower(strings.TrimSpace(target))
		if target == "" {
			continue
		}
		h.handleInput(target)
	}
}

// handleInput runs one lookup and prints the results.
func (h *InputHandler) handleInput(target string) {
	h.requestCount++

	start := time.Now()
	search := spell.NewSearch(h.index)

	var results []spell.Spelling
	search.Walk(target, func(sp spell.Spelling) bool {
		results = append(results, sp)
		return len(results) < h.limit
	})
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for target '%s'", elapsed, target)

	if len(results) == 0 {
		log.Warnf("No spellings found for '%s'", target)
		return
	}

	log.Printf("Found %d spellings for '%s':", len(results), target)
	for i, sp := range results {
		clSpelling := fmt.Sprintf("\033[38;5;75m%s\033[0m", spell.Render(sp))
		log.Printf("%2d. %-40s (%d chords)", i+1, clSpelling, len(sp))
	}
}
