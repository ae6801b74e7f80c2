package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dhconnelly/rtreego"
	"github.com/spf13/cobra"

	"github.com/kass/go-geo-kernel/pkg/geo"
	"github.com/kass/go-geo-kernel/pkg/polyline"
)

const (
	tolerance   = 0.0001
	minChildren = 25
	maxChildren = 50
	dimensions  = 2

	// candidateCount is how many R-Tree candidates are ranked with the
	// ordering-only approximation before the exact projection runs.
	candidateCount = 8
)

var rootCmd = &cobra.Command{
	Use:   "geokernel",
	Short: "Fixed-point geographic primitives playground",
	Long:  `Ad-hoc distance, bearing, projection and simplification computations over fixed-point coordinates, plus a nearest-segment benchmark.`,
}

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Distance and bearing between two points",
	Run:   runDistance,
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a point onto a segment",
	Run:   runProject,
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Simplify an encoded polyline",
	Run:   runSimplify,
}

var nearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "Run a nearest-segment benchmark",
	Long:  `Index random road-like segments in an R-Tree, rank candidates with the ordering-only approximation and report exact projections with timings.`,
	Run:   runNearest,
}

var (
	fromArg      string
	toArg        string
	sourceArg    string
	targetArg    string
	pointArg     string
	encodedArg   string
	thresholdArg int32
	numSegments  int
	numQueries   int
	numWorkers   int
)

func init() {
	distanceCmd.Flags().StringVar(&fromArg, "from", "", "Start point as LAT,LON in decimal degrees")
	distanceCmd.Flags().StringVar(&toArg, "to", "", "End point as LAT,LON in decimal degrees")

	projectCmd.Flags().StringVar(&sourceArg, "source", "", "Segment source as LAT,LON")
	projectCmd.Flags().StringVar(&targetArg, "target", "", "Segment target as LAT,LON")
	projectCmd.Flags().StringVar(&pointArg, "point", "", "Query point as LAT,LON")

	simplifyCmd.Flags().StringVar(&encodedArg, "encoded", "", "Google encoded polyline")
	simplifyCmd.Flags().Int32Var(&thresholdArg, "threshold", 10000, "Simplification threshold in fixed-point units")

	nearestCmd.Flags().IntVarP(&numSegments, "segments", "s", 100000, "Number of segments to index")
	nearestCmd.Flags().IntVarP(&numQueries, "queries", "q", 10000, "Number of queries to run")
	nearestCmd.Flags().IntVarP(&numWorkers, "workers", "w", runtime.NumCPU(), "Number of worker goroutines")

	rootCmd.AddCommand(distanceCmd, projectCmd, simplifyCmd, nearestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseCoordinate reads a "LAT,LON" pair in decimal degrees into a
// fixed-point coordinate.
func parseCoordinate(arg string) (geo.Coordinate, error) {
	latStr, lonStr, ok := strings.Cut(arg, ",")
	if !ok {
		return geo.Unset(), fmt.Errorf("expected LAT,LON, got %q", arg)
	}

	lat, err := geo.ParseFixed(strings.TrimSpace(latStr))
	if err != nil {
		return geo.Unset(), err
	}
	lon, err := geo.ParseFixed(strings.TrimSpace(lonStr))
	if err != nil {
		return geo.Unset(), err
	}

	c := geo.NewCoordinate(lat, lon)
	if !c.IsValid() {
		return geo.Unset(), fmt.Errorf("coordinate %q out of range", arg)
	}
	return c, nil
}

func mustCoordinate(arg, flag string) geo.Coordinate {
	if arg == "" {
		log.Fatalf("--%s is required", flag)
	}
	c, err := parseCoordinate(arg)
	if err != nil {
		log.Fatalf("--%s: %v", flag, err)
	}
	return c
}

func runDistance(cmd *cobra.Command, args []string) {
	from := mustCoordinate(fromArg, "from")
	to := mustCoordinate(toArg, "to")

	fmt.Printf("From:         %s\n", from.ReversedString())
	fmt.Printf("To:           %s\n", to.ReversedString())
	fmt.Printf("Great circle: %.3f m\n", geo.GreatCircleDistance(from, to))
	fmt.Printf("Planar:       %.3f m\n", geo.EuclideanApproxDistance(from, to))
	fmt.Printf("Bearing:      %.2f deg\n", geo.Bearing(from, to))
}

func runProject(cmd *cobra.Command, args []string) {
	source := mustCoordinate(sourceArg, "source")
	target := mustCoordinate(targetArg, "target")
	point := mustCoordinate(pointArg, "point")

	nearest, ratio, distance := geo.ProjectOnSegment(source, target, point)

	fmt.Printf("Nearest:  %s\n", nearest.ReversedString())
	fmt.Printf("Ratio:    %.6f\n", ratio)
	fmt.Printf("Distance: %.3f m\n", distance)
	fmt.Printf("Ordering: %d\n", geo.OrderedPerpendicularDistance(point, source, target))
}

func runSimplify(cmd *cobra.Command, args []string) {
	if encodedArg == "" {
		log.Fatal("--encoded is required")
	}

	coords, err := polyline.Decode([]byte(encodedArg))
	if err != nil {
		log.Fatalf("Failed to decode polyline: %v", err)
	}

	simplified := polyline.Simplify(coords, thresholdArg)

	fmt.Printf("Input points:  %d (%.1f m)\n", len(coords), polyline.Length(coords))
	fmt.Printf("Output points: %d (%.1f m)\n", len(simplified), polyline.Length(simplified))
	fmt.Printf("Encoded:       %s\n", polyline.Encode(simplified))
}

// roadSegment is an indexed segment; the R-Tree stores its bounding box
// while ranking and projection run on the fixed-point endpoints.
type roadSegment struct {
	source geo.Coordinate
	target geo.Coordinate
	rect   *rtreego.Rect
}

func (s *roadSegment) Bounds() *rtreego.Rect {
	return s.rect
}

func newRoadSegment(source, target geo.Coordinate) (*roadSegment, error) {
	minLat := math.Min(source.LatDegrees(), target.LatDegrees())
	minLon := math.Min(source.LonDegrees(), target.LonDegrees())
	sizeLat := math.Abs(source.LatDegrees()-target.LatDegrees()) + tolerance
	sizeLon := math.Abs(source.LonDegrees()-target.LonDegrees()) + tolerance

	rect, err := rtreego.NewRect(rtreego.Point{minLat, minLon}, []float64{sizeLat, sizeLon})
	if err != nil {
		return nil, fmt.Errorf("invalid segment rect: %w", err)
	}
	return &roadSegment{source: source, target: target, rect: rect}, nil
}

func runNearest(cmd *cobra.Command, args []string) {
	fmt.Printf("Indexing %d random segments...\n", numSegments)

	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	segments := generateRandomSegments(numSegments)

	start := time.Now()
	for _, seg := range segments {
		tree.Insert(seg)
	}
	fmt.Printf("Indexed in %v\n", time.Since(start))
	fmt.Printf("Running %d nearest-segment queries using %d workers...\n", numQueries, numWorkers)

	queries := make([]geo.Coordinate, numQueries)
	for i := range queries {
		queries[i] = randomPointInRegion()
	}

	var queryCount atomic.Int64
	var totalMeters atomic.Int64

	start = time.Now()

	var wg sync.WaitGroup
	queriesPerWorker := numQueries / numWorkers
	if queriesPerWorker < 1 {
		queriesPerWorker = 1
	}

	for w := 0; w < numWorkers && w*queriesPerWorker < numQueries; w++ {
		wg.Add(1)
		startIdx := w * queriesPerWorker
		endIdx := startIdx + queriesPerWorker
		if w == numWorkers-1 || endIdx > numQueries {
			endIdx = numQueries
		}

		go func(batch []geo.Coordinate) {
			defer wg.Done()

			for _, query := range batch {
				candidates := tree.NearestNeighbors(candidateCount,
					rtreego.Point{query.LatDegrees(), query.LonDegrees()})

				// Rank candidates with the cheap ordering-only metric,
				// then project onto the winner for the exact answer.
				var best *roadSegment
				bestRank := int32(math.MaxInt32)
				for _, candidate := range candidates {
					seg := candidate.(*roadSegment)
					rank := geo.OrderedPerpendicularDistance(query, seg.source, seg.target)
					if rank < bestRank {
						bestRank = rank
						best = seg
					}
				}
				if best == nil {
					continue
				}

				_, _, distance := geo.ProjectOnSegment(best.source, best.target, query)
				totalMeters.Add(int64(distance))
				queryCount.Add(1)
			}
		}(queries[startIdx:endIdx])
	}

	wg.Wait()
	elapsed := time.Since(start)

	completed := queryCount.Load()
	fmt.Printf("\nBenchmark Results:\n")
	fmt.Printf("Total queries: %d\n", completed)
	fmt.Printf("Total time: %v\n", elapsed)
	fmt.Printf("Queries per second: %.0f\n", float64(completed)/elapsed.Seconds())
	fmt.Printf("Average snap distance: %.1f m\n", float64(totalMeters.Load())/float64(completed))
}

// generateRandomSegments builds short road-like segments inside the test
// region.
func generateRandomSegments(n int) []*roadSegment {
	segments := make([]*roadSegment, 0, n)
	for len(segments) < n {
		source := randomPointInRegion()
		// Up to ~500m of extent in each axis.
		target := geo.NewCoordinate(
			source.Lat+rand.Int31n(10000)-5000,
			source.Lon+rand.Int31n(10000)-5000,
		)

		seg, err := newRoadSegment(source, target)
		if err != nil {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}

func randomPointInRegion() geo.Coordinate {
	// Roughly the Bay Area.
	return geo.FromDegrees(
		37.0+rand.Float64(),
		-123.0+rand.Float64(),
	)
}
