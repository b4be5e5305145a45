package balkanize

import "github.com/katalvlaran/skymask/polygon"

// Warning records a single polygon that was logged and skipped during a
// run (§4.6), rather than aborting the whole run.
type Warning struct {
	PolygonID int64
	Message   string
}

// Result is Balkanize's output: the final set of disjoint, connected
// polygons plus a bounded record of anything that went wrong along the
// way.
type Result struct {
	// Polygons is the final, pruned, pixel-sorted, renumbered output.
	Polygons []polygon.Polygon

	// Warnings holds up to Config.MaxWarnings entries (WARNMAX); once
	// that bound is hit, further warnings only increment
	// WarningsDropped instead of growing this slice without limit.
	Warnings []Warning

	// WarningsDropped counts warnings that occurred beyond MaxWarnings.
	WarningsDropped int

	// PartialPartitions counts polygons whose stage 2 partitioning used
	// Config.ForceSplit because no excluding lasso could be found.
	PartialPartitions int
}

// warningSink bounds how many Warning values Result keeps, mirroring
// WARNMAX's "print up to N, then '... M more'" behavior.
type warningSink struct {
	max     int
	list    []Warning
	dropped int
	logger  Logger
}

func newWarningSink(max int, logger Logger) *warningSink {
	if logger == nil {
		logger = NopLogger{}
	}
	return &warningSink{max: max, logger: logger}
}

func (s *warningSink) add(id int64, message string) {
	s.logger.Printf("balkanize: polygon %d: %s", id, message)
	if len(s.list) < s.max {
		s.list = append(s.list, Warning{PolygonID: id, Message: message})
		return
	}
	s.dropped++
}
