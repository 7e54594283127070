// Package main converts GTFS-Realtime TripUpdates files into the inbound
// message the watch face receives, printed as YAML.
//
// Usage:
//
//	go run ./cmd/feed2msg --catalog data/catalog.yaml --feed ttc.pb,go.pb [flags]
//
// Flags:
//
//	--data-dir <dir>    Directory the catalog and feed paths are relative to (default: ".")
//	--catalog <path>    Stop/route catalog (YAML)
//	--feed <paths>      Comma-separated GTFS-RT files, read concurrently
//	--fixture <path>    Read departures from a YAML fixture instead of feeds
//	--dump              Also print each feed as protojson
//	--verbose           Enable verbose logging
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"

	"github.com/decker502/transitface/pkg/companion"
)

var (
	dataDirFlag = flag.String("data-dir", ".", "Directory the catalog and feed paths are relative to")
	catalogFlag = flag.String("catalog", "data/catalog.yaml", "Stop/route catalog")
	feedFlag    = flag.String("feed", "", "Comma-separated GTFS-RT TripUpdates files")
	fixtureFlag = flag.String("fixture", "", "YAML departures fixture (overrides --feed)")
	dumpFlag    = flag.Bool("dump", false, "Print each feed as protojson")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	fsys := os.DirFS(*dataDirFlag)
	source, feeds, err := buildSource(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "feed2msg: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		for _, path := range feeds {
			if err := dumpFeed(fsys, path); err != nil {
				fmt.Fprintf(os.Stderr, "feed2msg: %v\n", err)
				os.Exit(1)
			}
		}
	}

	msg := companion.BuildMessage(context.Background(), source)
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(msg); err != nil {
		fmt.Fprintf(os.Stderr, "feed2msg: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}

func buildSource(fsys fs.FS) (companion.Source, []string, error) {
	if *fixtureFlag != "" {
		return companion.NewFixtureSource(fsys, *fixtureFlag), nil, nil
	}

	var feeds []string
	for _, p := range strings.Split(*feedFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			feeds = append(feeds, p)
		}
	}
	if len(feeds) == 0 {
		return nil, nil, fmt.Errorf("either --feed or --fixture is required")
	}

	catalog, err := companion.LoadCatalog(fsys, *catalogFlag)
	if err != nil {
		return nil, nil, err
	}
	multi := make(companion.MultiSource, 0, len(feeds))
	for _, p := range feeds {
		multi = append(multi, companion.NewFeedSource(fsys, p, catalog))
	}
	return multi, feeds, nil
}

func dumpFeed(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return err
	}
	var feed gtfs.FeedMessage
	if err := proto.Unmarshal(data, &feed); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	options := protojson.MarshalOptions{Multiline: true}
	out, err := options.Marshal(&feed)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "# %s\n%s\n", path, out)
	return nil
}
