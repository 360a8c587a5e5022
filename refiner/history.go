package refiner

// history is a fixed-capacity ring of mask frames, oldest first.
type history struct {
	frames [][]float32
	// Index of the oldest frame
	start int
	count int
	size  int
}

func newHistory(capacity, size int) *history {
	return &history{
		frames: make([][]float32, capacity),
		size:   size,
	}
}

func (h *history) len() int {
	return h.count
}

func (h *history) capacity() int {
	return len(h.frames)
}

// submit stores a copy of mask and returns the mean over all retained frames.
// When the ring is full the oldest frame is evicted and its buffer reused.
func (h *history) submit(mask []float32) []float32 {
	if h.count < len(h.frames) {
		pos := (h.start + h.count) % len(h.frames)
		h.frames[pos] = append(make([]float32, 0, h.size), mask...)
		h.count++
	} else {
		copy(h.frames[h.start], mask)
		h.start = (h.start + 1) % len(h.frames)
	}
	return h.average()
}

func (h *history) average() []float32 {
	averaged := make([]float32, h.size)
	if h.count == 0 {
		return averaged
	}
	n := float32(h.count)
	h.each(func(frame []float32) {
		for i := range averaged {
			averaged[i] += frame[i] / n
		}
	})
	return averaged
}

// each calls fn for every retained frame in submission order
func (h *history) each(fn func(frame []float32)) {
	for i := 0; i < h.count; i++ {
		fn(h.frames[(h.start+i)%len(h.frames)])
	}
}

func (h *history) reset() {
	for i := range h.frames {
		h.frames[i] = nil
	}
	h.start = 0
	h.count = 0
}
