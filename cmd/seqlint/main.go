// seqlint checks that every scene a config references exists in the
// embedded scene set and decodes cleanly.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sablewing/timerift/config"
	"github.com/sablewing/timerift/scenes"
)

func main() {
	configPath := flag.String("config", "", "config file to lint (embedded default when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	problems := 0
	seen := map[string]bool{}
	for _, name := range cfg.SceneNames() {
		if seen[name] {
			continue
		}
		seen[name] = true

		if !scenes.Exists(name) {
			fmt.Printf("missing scene: %s\n", name)
			problems++
			continue
		}
		if _, err := scenes.Load(name); err != nil {
			fmt.Printf("broken scene %s: %v\n", name, err)
			problems++
		}
	}

	if problems > 0 {
		fmt.Printf("%d problem(s)\n", problems)
		os.Exit(1)
	}
	fmt.Printf("ok: %d scene(s) checked\n", len(seen))
}
