// SPDX-License-Identifier: EPL-2.0

package peaks

// Channel is a view over one channel of a Waveform. It holds no data of its
// own and is only valid as long as the Waveform it came from.
type Channel struct {
	w     *Waveform
	index int
}

// Index returns the channel number within its waveform.
func (c Channel) Index() int { return c.index }

// Min returns the minimum value at pixel index.
func (c Channel) Min(index int) int {
	return c.w.at(c.w.offset(index, c.index))
}

// Max returns the maximum value at pixel index.
func (c Channel) Max(index int) int {
	return c.w.at(c.w.offset(index, c.index) + 1)
}

// MinArray returns every minimum value of the channel, in pixel order.
func (c Channel) MinArray() []int {
	return c.values(0)
}

// MaxArray returns every maximum value of the channel, in pixel order.
func (c Channel) MaxArray() []int {
	return c.values(1)
}

func (c Channel) values(which int) []int {
	n := c.w.Length()
	out := make([]int, n)

	stride := c.w.Channels() * 2
	off := c.index*2 + which
	for i := range n {
		out[i] = c.w.at(off + i*stride)
	}
	return out
}

// set writes the pair for pixel index; used while a waveform is being built.
func (c Channel) set(index, min, max int) {
	c.w.set(index, c.index, min, max)
}
