package terrain

// terrainPasses runs a sweep body twice, once for the level proper and once
// shifted left by the world width so terrain near the seam reappears at the
// right edge. A non-positive world width disables wrapping.
func (l *Level) terrainPasses(view Rect, body func(left, right int)) {
	passes := 2
	if l.WorldWidth <= 0 {
		passes = 1
	}
	for p := 0; p < passes; p++ {
		body(view.X-p*l.WorldWidth, view.Right-p*l.WorldWidth)
	}
}

// BlackTerrain draws the dark faces and whitened underside bands of every
// wall of one kind crossing the view. Walls are visited in world-x order
// via the kind list; the caller picks the kind order and with it which
// faces win overlaps.
func (l *Level) BlackTerrain(b *Bitmap, view Rect, kind Kind) {
	if kind < KindNormal || kind >= numKinds {
		panic("terrain: bad wall kind")
	}
	l.terrainPasses(view, func(left, right int) {
		for i := l.kindHead[kind]; i != -1; i = l.nextKind[i] {
			w := &l.Walls[i]
			if w.EndX < left-10 {
				continue
			}
			if w.StartX >= right {
				break
			}
			ytop, ybot := w.StartY, w.EndY
			if w.Up {
				ytop, ybot = w.EndY, w.StartY
			}
			if ybot < view.Y-6 || ytop >= view.Bottom {
				continue
			}
			blackDrawers[w.NewType](b, w, w.StartX-left, w.StartY-view.Y)
		}
	})
}

// WhiteTerrain runs the white pass: endpoint and junction patches, junction
// crosshatches, and the NNE underside bands. It must run before the black
// passes so the faces painted over patch edges survive.
func (l *Level) WhiteTerrain(b *Bitmap, view Rect) {
	l.fastWhites(b, view)
	l.fastHashes(b, view)
	l.nneUndersides(b, view)
}

// fastWhites sweeps the sorted patch list across the view: a sixteen-entry
// strided skip to the neighborhood of the left edge, a single-step
// refinement, then the draw loop. The stride may overshoot the live
// entries; the sentinel run is what keeps it on the slice. Patches carrying
// a blended junction are exclusive-ORed; the rest AND-clear.
func (l *Level) fastWhites(b *Bitmap, view Rect) {
	top, bot := view.Y, view.Bottom
	l.terrainPasses(view, func(left, right int) {
		p := l.Whites
		i := 0
		for p[i+16].X < left-15 {
			i += 16
		}
		for p[i].X < left-15 {
			i++
		}
		for ; p[i].X < right; i++ {
			wh := &p[i]
			if wh.Y > bot || wh.Y+wh.Ht <= top {
				continue
			}
			if wh.HasJ {
				eorWallPiece(b, wh.X-left, wh.Y-top, wh.Ht, wh.Data)
			} else {
				whiteWallPiece(b, wh.X-left, wh.Y-top, wh.Ht, wh.Data)
			}
		}
	})
}

// fastHashes stamps the crosshatch over every junction still in the list,
// skipping to the left edge with the same two-speed scan as fastWhites.
// The margins admit one partly visible figure on each edge.
func (l *Level) fastHashes(b *Bitmap, view Rect) {
	top, bot := view.Y-5, view.Bottom
	l.terrainPasses(view, func(left, right int) {
		js := l.Junctions
		j := 0
		for js[j+16].X < left-8 {
			j += 16
		}
		for js[j].X < left-8 {
			j++
		}
		for ; js[j].X < right; j++ {
			jn := &js[j]
			if jn.Y < top || jn.Y >= bot {
				continue
			}
			drawHashPiece(b, jn.X-left, jn.Y-view.Y, len(hashFigure), hashFigure)
		}
	})
}

// nneUndersides whitens the band to the right of each NNE wall. NNE is the
// one direction whose underside cannot ride along with its black drawer:
// the band must be in place before any face paints over it.
func (l *Level) nneUndersides(b *Bitmap, view Rect) {
	l.terrainPasses(view, func(left, right int) {
		for i := l.firstWh; i != -1; i = l.nextWh[i] {
			w := &l.Walls[i]
			if w.EndX < left-10 {
				continue
			}
			if w.StartX >= right {
				break
			}
			if w.StartY < view.Y-6 || w.EndY >= view.Bottom {
				continue
			}
			nneWhite(b, w, w.StartX-left, w.StartY-view.Y)
		}
	})
}
