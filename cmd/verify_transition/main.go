// Package main provides a headless transition timeline tool for checking
// the arrivals face animation without opening a window.
//
// Usage:
//
//	go run ./cmd/verify_transition [flags]
//
// Flags:
//
//	--routes <n>        Number of synthetic routes (default: 3, 0 shows the status path)
//	--index <i>         Starting route index (default: 0)
//	--dir <down|up>     Navigation direction (default: down)
//	--presses <n>       Presses issued at 0ms, then every --gap ms (default: 1)
//	--gap <ms>          Interval between presses (default: 0)
//	--duration <ms>     Virtual time to simulate (default: 1500)
//	--verbose           Enable verbose logging
//
// Output: one line per event with its virtual timestamp, plus door frame and
// layer offset changes.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/transitface/pkg/anim"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/ecs"
	"github.com/decker502/transitface/pkg/entities"
	"github.com/decker502/transitface/pkg/systems"
	"github.com/decker502/transitface/pkg/transit"
)

var (
	routesFlag   = flag.Int("routes", 3, "Number of synthetic routes")
	indexFlag    = flag.Int("index", 0, "Starting route index")
	dirFlag      = flag.String("dir", "down", "Navigation direction: down or up")
	pressesFlag  = flag.Int("presses", 1, "Number of button presses")
	gapFlag      = flag.Int("gap", 0, "Interval between presses in milliseconds")
	durationFlag = flag.Int("duration", 1500, "Virtual time to simulate in milliseconds")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

var palette = []transit.Color{transit.ColorRed, transit.ColorBlue, transit.ColorLimerick, transit.ColorBlack}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	dir, err := parseDirection(*dirFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	scheduler := anim.NewScheduler()
	em := ecs.NewEntityManager()
	layers := entities.NewFaceLayers(em)
	routes := transit.NewRouteList()
	overrides := &transit.Overrides{}

	if *routesFlag > 0 {
		routes.Replace(syntheticRoutes(*routesFlag))
		for i := 0; i < *indexFlag; i++ {
			if !routes.Advance() {
				break
			}
		}
	} else {
		routes.SetStatus(transit.StatusNoResults)
	}

	now := func() string {
		return fmt.Sprintf("%5dms", scheduler.Now()/time.Millisecond)
	}

	doors := systems.NewDoorSpriteSystem(scheduler, func() int { return 10 })
	doors.SetOnChange(func() {
		fmt.Printf("%s  door frame=%d\n", now(), doors.Frame())
	})

	redrawer := &tracingRedrawer{now: now, routes: routes}
	transitions := systems.NewTransitionSystem(scheduler, em, layers, routes, overrides, doors, redrawer, config.DefaultTiming())
	transitions.SetTrace(func(event string) {
		fmt.Printf("%s  %s\n", now(), event)
	})

	panel := entities.Layer(em, layers.Description)
	vehicle := entities.Layer(em, layers.Vehicle)
	lastPanel, lastVehicle := panel.Offset, vehicle.Offset

	fmt.Printf("start: index=%d len=%d status=%q dir=%s\n", routes.Index(), routes.Len(), routes.Status().Text(), dir)

	presses := *pressesFlag
	nextPress := time.Duration(0)
	end := time.Duration(*durationFlag) * time.Millisecond
	for scheduler.Now() <= end {
		if presses > 0 && scheduler.Now() >= nextPress {
			fmt.Printf("%s  press %s\n", now(), dir)
			transitions.Navigate(dir)
			presses--
			nextPress += time.Duration(*gapFlag) * time.Millisecond
			continue
		}

		scheduler.Advance(time.Millisecond)
		lastPanel = reportOffset(now(), "panel", panel.Offset, lastPanel)
		lastVehicle = reportOffset(now(), "vehicle", vehicle.Offset, lastVehicle)
	}

	fmt.Printf("end: index=%d state=%s redraws=%d door=%d\n",
		routes.Index(), transitions.State(), transitions.Redraws(), doors.Frame())
}

type tracingRedrawer struct {
	now    func() string
	routes *transit.RouteList
}

func (r *tracingRedrawer) Redraw() {
	fmt.Printf("%s  redraw index=%d\n", r.now(), r.routes.Index())
}

// reportOffset 每移动 8 像素或回到静止位置时输出一次
func reportOffset(at, name string, cur, last image.Point) image.Point {
	d := cur.Sub(last)
	if d.X*d.X+d.Y*d.Y >= 64 || (cur == image.Point{} && last != image.Point{}) {
		fmt.Printf("%s  %s offset=%v\n", at, name, cur)
		return cur
	}
	return last
}

func parseDirection(s string) (systems.Direction, error) {
	switch s {
	case "down", "forward":
		return systems.DirectionForward, nil
	case "up", "backward":
		return systems.DirectionBackward, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want down or up)", s)
}

func syntheticRoutes(n int) []transit.RouteRecord {
	records := make([]transit.RouteRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, transit.RouteRecord{
			Time:        int16(3 + 4*i),
			Unit:        "min",
			StopName:    "Queen St West",
			DestName:    fmt.Sprintf("Destination %d", i+1),
			RouteNumber: fmt.Sprintf("%d", 501+i),
			RouteName:   "Queen",
			Vehicle:     transit.VehicleType(i % 4),
			Color:       palette[i%len(palette)],
			Shape:       transit.BadgeShape(i % 3),
		})
	}
	return records
}
