package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// runOpts carries the global flags shared by all speaking commands.
type runOpts struct {
	ConfigPath string
	Backend    string
	Output     string // -o: explicit output file
	Play       bool
	Volume     int // playback volume 0-100; -1 = use config
}

func main() {
	args := os.Args[1:]
	opts := runOpts{Volume: -1}

	// Parse flags, keeping positional args in order.
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				fatal("--config requires a file path")
			}
			opts.ConfigPath = args[i+1]
			i++
		case "--backend", "-b":
			if i+1 >= len(args) {
				fatal("--backend requires a name (local, openai)")
			}
			opts.Backend = args[i+1]
			i++
		case "--output", "-o":
			if i+1 >= len(args) {
				fatal("--output requires a file path")
			}
			opts.Output = args[i+1]
			i++
		case "--play", "-p":
			opts.Play = true
		case "--volume", "-v":
			if i+1 >= len(args) {
				fatal("--volume requires a value (0-100)")
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil || v < 0 || v > 100 {
				fatal("volume must be a number between 0 and 100")
			}
			opts.Volume = v
			i++
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) == 0 {
		runDefault(opts)
		return
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "analyze":
		analyzeCmd(filtered[1:], opts)
	case "demo":
		demoCmd(opts)
	case "history":
		historyCmd(filtered[1:], opts)
	case "cache":
		cacheCmd(filtered[1:])
	default:
		// Everything else is text to speak. Quoted multi-word input
		// arrives as one argument; unquoted words are joined.
		speakCmd(strings.Join(filtered, " "), opts)
	}
}

// runDefault handles invocation without text: interactive prompt on a
// terminal, otherwise the whole of stdin as one text.
func runDefault(opts runOpts) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		runInteractive(opts)
		return
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("reading stdin: %v", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		printUsage()
		os.Exit(1)
	}
	speakCmd(text, opts)
}

// runInteractive prompts for text in a loop until quit/exit/q or EOF.
func runInteractive(opts runOpts) {
	p, err := newPipeline(opts)
	if err != nil {
		fatal("%v", err)
	}
	defer p.close()

	fmt.Println("emovoice interactive mode. Type 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		text := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(text) {
		case "quit", "exit", "q":
			return
		case "":
			continue
		}
		if err := p.speak(text, "", opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("emovoice %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("emovoice %s - Emotion-aware text-to-speech\n", version)
	fmt.Println(`
Usage:
  emovoice [options] <text>
  emovoice [options]                Interactive mode (or reads stdin when piped)
  emovoice analyze <text>           Classify without synthesizing
  emovoice demo                     Synthesize five sample texts
  emovoice history [days|stats|clean|clear]
  emovoice cache [list|clear]

Options:
  --backend, -b <name>   Speech backend: local (default) or openai
  --output, -o <path>    Output WAV path (default: <emotion>_<timestamp>.wav)
  --play, -p             Play the result after saving
  --volume, -v <0-100>   Playback volume (with --play)
  --config, -c <path>    Path to emovoice-config.json

Config resolution:
  1. --config <path>                           (explicit)
  2. emovoice-config.json next to binary       (portable)
  3. ~/.config/emovoice/emovoice-config.json   (user default)
  Missing config falls back to built-in defaults.

Examples:
  emovoice "I'm so happy to see you!"
  emovoice -o sad_news.wav "This is terrible news."
  emovoice --play --backend openai "We actually did it!"
  emovoice analyze "Why won't this work?"
  emovoice history stats 7`)
}
