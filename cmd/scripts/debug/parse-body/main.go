package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"

	"github.com/campustools/coursemap/pkg/coursemap"
)

func main() {
	log := logger.New()

	var opts struct {
		Raw bool `short:"r" long:"raw" description:"Also print the raw body after entity decoding"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/debug/parse-body <path/to/body.html>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Err(err).Fatal("read file error")
	}
	body := string(data)

	files := coursemap.ParseEmbeddedFiles(body)
	links := coursemap.ParseContentLinks(body)
	urls := coursemap.ParseInlineURLs(body)
	videos := coursemap.ParseVideoStudioLinks(body)

	fmt.Printf("Embedded files (%d):\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s (mime=%s, render=%s)\n", f.Name, f.Mime, f.Render)
	}
	fmt.Printf("Content links (%d):\n", len(links))
	for _, l := range links {
		fmt.Printf("  %s (%s)\n", l.ID, l.Type)
	}
	fmt.Printf("Inline URLs (%d):\n", len(urls))
	for _, u := range urls {
		fmt.Printf("  %s -> %s\n", u.Label, u.URL)
	}
	fmt.Printf("Video Studio links (%d):\n", len(videos))
	for _, v := range videos {
		fmt.Printf("  %s -> %s\n", v.VideoID, v.Href)
	}

	if opts.Raw {
		fmt.Println("\n--- body ---")
		fmt.Println(body)
	}
}
