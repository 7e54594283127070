package companion

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/decker502/transitface/pkg/transit"
)

// correction 运营商数据修正
type correction func(rec *transit.RouteRecord)

var corrections = map[string]correction{
	"Toronto TTC": correctTTC,
	"GO Transit":  correctGO,
	"UP Express":  correctUPExpress,
	"grt":         correctGRT,
}

var (
	ttcStreetcarRoutes = map[string]bool{
		"501": true, "502": true, "503": true, "504": true, "504A": true, "504B": true,
		"505": true, "506": true, "507": true, "508": true, "509": true, "510": true,
		"511": true, "512": true, "513": true, "514": true,
		"301": true, "304": true, "306": true, "310": true,
	}

	// "Dundas St West at Bathurst St" → "Dundas / Bathurst"
	streetAtPattern  = regexp.MustCompile(` (St|Av|Ave|Dr|Rd)( East| West)? at `)
	streetEndPattern = regexp.MustCompile(` (St|Av|Ave|Dr|Rd)( East| West)?$`)
	// "LINE 2 (BLOOR - DANFORTH)" → "BLOOR - DANFORTH"
	subwayLinePattern = regexp.MustCompile(`LINE \d \((.+)\)`)
)

func correctTTC(rec *transit.RouteRecord) {
	if n, err := strconv.Atoi(rec.RouteNumber); err == nil && n >= 1 && n <= 6 {
		rec.Shape = transit.ShapeCircle
		rec.Vehicle = transit.VehicleSubway
	}
	if ttcStreetcarRoutes[rec.RouteNumber] {
		rec.Vehicle = transit.VehicleStreetcar
	}

	rec.StopName = streetAtPattern.ReplaceAllString(rec.StopName, " / ")
	rec.StopName = streetEndPattern.ReplaceAllString(rec.StopName, "")

	if subwayLinePattern.MatchString(rec.RouteName) {
		rec.RouteName = subwayLinePattern.ReplaceAllString(rec.RouteName, "$1")
		// cases.Caser 带状态，不能在 goroutine 之间共享
		rec.RouteName = cases.Title(language.English).String(strings.ToLower(rec.RouteName))
	}
}

func correctGO(rec *transit.RouteRecord) {
	rec.Shape = transit.ShapeRect
	rec.Vehicle = transit.VehicleRegionalTrain
	rec.DestName = strings.TrimPrefix(rec.DestName, rec.RouteNumber+" - ")
}

func correctUPExpress(rec *transit.RouteRecord) {
	rec.Shape = transit.ShapeRect
	rec.Vehicle = transit.VehicleRegionalTrain
}

func correctGRT(rec *transit.RouteRecord) {
	n, err := strconv.Atoi(rec.RouteNumber)
	if err != nil {
		return
	}
	switch {
	case n >= 200 && n <= 299:
		// iXpress
		rec.Color = transit.ColorLimerick
	case n >= 300 && n <= 399:
		// ION
		rec.Color = transit.ColorBlue
	}
	if rec.RouteNumber == "301" {
		rec.Vehicle = transit.VehicleStreetcar
	}
}
