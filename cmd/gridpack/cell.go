package main

// cell is the element type of the demonstration grid.
type cell struct {
	Density  float64
	Velocity [3]float64
	Flag     int32
	Species  []int32
}

const numCellProps = 4

func (c *cell) NumProps() int { return numCellProps }

func (c *cell) Prop(i int) any {
	switch i {
	case 0:
		return &c.Density
	case 1:
		return &c.Velocity
	case 2:
		return &c.Flag
	case 3:
		return &c.Species
	}
	return nil
}
