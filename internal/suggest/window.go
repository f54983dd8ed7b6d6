package suggest

// Window is the slice of the suggestion list that fits on screen.
// Height <= 0 means every suggestion fits.
type Window struct {
	Offset int
	Height int
}

// Reveal scrolls the least amount needed for index to be on screen.
// Indexes already visible leave the window untouched.
func (w *Window) Reveal(index int) {
	if index < 0 || w.Contains(index) {
		return
	}
	if index < w.Offset {
		w.Offset = index
		return
	}
	if index >= w.Offset+w.Height {
		w.Offset = index - w.Height + 1
	}
}

// Contains reports whether index is inside the window.
func (w Window) Contains(index int) bool {
	if w.Height <= 0 {
		return index >= 0
	}
	return index >= w.Offset && index < w.Offset+w.Height
}

// Bounds returns the half-open range of visible indexes for total items.
func (w Window) Bounds(total int) (start, end int) {
	if w.Height <= 0 {
		return 0, total
	}
	start = w.Offset
	if start > total {
		start = total
	}
	end = start + w.Height
	if end > total {
		end = total
	}
	return start, end
}

func (w *Window) reset() {
	w.Offset = 0
}
