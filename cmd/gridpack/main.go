// Tool for round-tripping a region of a grid through a packed buffer
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-ndgrid/grid"
	"github.com/robert-malhotra/go-ndgrid/internal/binary"
	"github.com/robert-malhotra/go-ndgrid/internal/config"
	"github.com/robert-malhotra/go-ndgrid/internal/log"
	"github.com/robert-malhotra/go-ndgrid/memory"
	"github.com/robert-malhotra/go-ndgrid/pack"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// report summarizes one pack/unpack round trip.
type report struct {
	Extents    []int       `json:"extents"`
	Ghost      []int       `json:"ghost"`
	Start      string      `json:"start"`
	Stop       string      `json:"stop"`
	Props      []int       `json:"props"`
	Cells      int         `json:"cells"`
	Bytes      int         `json:"bytes"`
	Items      []pack.Item `json:"items"`
	Stats      pack.Stats  `json:"stats"`
	Checksum   uint32      `json:"checksum"`
	Repacked   bool        `json:"repacked"`
	Mismatches []string    `json:"mismatches"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) > 1 {
		return errors.New("usage: gridpack [config.yaml]")
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger, _, err := log.InitLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer log.ReplaceGlobals(logger)()
	defer func() { _ = log.Sync() }()

	src, err := grid.New[cell](cfg.Grid.Extents, grid.WithGhost(cfg.Grid.Ghost...), grid.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "create grid")
	}
	fill(src)

	it := region(src, cfg.Region)
	if err := it.Err(); err != nil {
		return errors.Wrap(err, "select region")
	}
	log.L().Info("packing region",
		zap.Stringer("start", it.Start()),
		zap.Stringer("stop", it.Stop()),
		zap.Int("cells", it.Count()),
		zap.Ints("props", cfg.Props))

	mem, req, err := packRegion(src, it, cfg.Props)
	if err != nil {
		return err
	}

	dst, err := grid.NewLike[cell](src)
	if err != nil {
		return err
	}
	if err := unpackRegion(dst, mem, cfg.Props, it.Start(), it.Stop()); err != nil {
		return err
	}

	// Packing the copy must reproduce the buffer byte for byte.
	again, _, err := packRegion(dst, dst.SubIterator(it.Start(), it.Stop()), cfg.Props)
	if err != nil {
		return errors.Wrap(err, "repack region")
	}
	sum := binary.Fletcher32(mem.Bytes())

	rep := report{
		Extents:    cfg.Grid.Extents,
		Ghost:      cfg.Grid.Ghost,
		Start:      it.Start().String(),
		Stop:       it.Stop().String(),
		Props:      cfg.Props,
		Cells:      it.Count(),
		Bytes:      mem.Size(),
		Items:      req.Items(),
		Stats:      req.Stats(),
		Checksum:   sum,
		Repacked:   binary.Fletcher32(again.Bytes()) == sum,
		Mismatches: compare(src, dst, it, cfg.Props),
	}
	if len(rep.Props) == 0 {
		rep.Props = lo.Range(numCellProps)
	}
	if len(rep.Mismatches) > 0 || !rep.Repacked {
		log.L().Warn("round trip mismatch",
			zap.Int("cells", len(rep.Mismatches)),
			zap.Bool("repacked", rep.Repacked))
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// fill gives every cell values derived from its address.
func fill(g *grid.Grid[cell]) {
	s := g.Shape()
	for it := g.Iterator(); it.Valid(); it.Next() {
		k := it.Key()
		addr := s.Linearize(k)
		p := g.GetPtr(k)
		p.Density = float64(addr) * 0.5
		p.Velocity = [3]float64{float64(k.At(0)), float64(addr % 7), -1}
		p.Flag = int32(addr % 3)
		if n := addr % 4; n > 0 {
			p.Species = lo.Map(lo.Range(n), func(v int, _ int) int32 { return int32(v) })
		}
	}
}

func region(g *grid.Grid[cell], rc config.RegionConfig) *grid.SubIterator {
	if rc.Domain {
		return g.DomainIterator()
	}
	return g.SubIterator(grid.NewKey(rc.Start...), grid.NewKey(rc.Stop...))
}

// packRegion sizes the session, allocates once and packs a header followed
// by the region. The header is the cell count and the selected property
// list, the list aligned to 8 bytes.
func packRegion(g *grid.Grid[cell], it *grid.SubIterator, props []int) (*memory.Heap, *pack.Request, error) {
	count := int32(it.Count())
	sel := lo.Map(props, func(p int, _ int) int32 { return int32(p) })

	req := pack.NewRequest()
	if err := req.Add(&count); err != nil {
		return nil, nil, err
	}
	if err := req.AddAligned(8, &sel); err != nil {
		return nil, nil, err
	}
	if err := pack.AddSub[*grid.SubIterator](req, g, it, props...); err != nil {
		return nil, nil, errors.Wrap(err, "size region")
	}

	mem, err := req.Alloc()
	if err != nil {
		return nil, nil, errors.Wrap(err, "allocate buffer")
	}
	c := pack.NewCursor(mem)
	if err := pack.Pack(c, &count); err != nil {
		return nil, nil, err
	}
	if err := c.Align(8); err != nil {
		return nil, nil, err
	}
	if err := pack.Pack(c, &sel); err != nil {
		return nil, nil, err
	}
	if err := pack.PackSub[*grid.SubIterator](c, g, it, props...); err != nil {
		return nil, nil, errors.Wrap(err, "pack region")
	}
	if c.Offset() != req.End() {
		return nil, nil, errors.AssertionFailedf("packed %d bytes, sized %d", c.Offset(), req.End())
	}
	return mem, req, nil
}

func unpackRegion(g *grid.Grid[cell], mem memory.Region, props []int, start, stop grid.Key) error {
	c := pack.NewCursor(mem)
	var count int32
	if err := pack.Unpack(c, &count); err != nil {
		return err
	}
	it := g.SubIterator(start, stop)
	if int(count) != it.Count() {
		return errors.Newf("buffer holds %d cells, region has %d", count, it.Count())
	}
	if err := c.Align(8); err != nil {
		return err
	}
	var sel []int32
	if err := pack.Unpack(c, &sel); err != nil {
		return err
	}
	if got := lo.Map(sel, func(p int32, _ int) int { return int(p) }); !slices.Equal(got, props) {
		return errors.Newf("buffer holds properties %v, expected %v", got, props)
	}
	if err := pack.UnpackSub[*grid.SubIterator](c, g, it, props...); err != nil {
		return errors.Wrap(err, "unpack region")
	}
	return nil
}

// compare lists the keys whose selected properties differ.
func compare(src, dst *grid.Grid[cell], it *grid.SubIterator, props []int) []string {
	if len(props) == 0 {
		props = lo.Range(numCellProps)
	}
	sub := grid.NewSubIterator(src.Shape(), it.Start(), it.Stop())
	var bad []string
	for k := range sub.Keys() {
		a, b := src.GetPtr(k), dst.GetPtr(k)
		if lo.SomeBy(props, func(p int) bool {
			return !reflect.DeepEqual(a.Prop(p), b.Prop(p))
		}) {
			bad = append(bad, k.String())
		}
	}
	return bad
}
